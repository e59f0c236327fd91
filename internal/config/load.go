package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/blackboxhq/roadmap-go/internal/roadmap"
)

// Load loads configuration from multiple sources in priority order:
//  1. Defaults
//  2. Project config file (roadmap.toml or .roadmap.toml)
//  3. Environment variables (.env loaded first, never overriding the
//     real environment)
//  4. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from project config file
	configFile := findProjectConfigFile()
	if configFile != "" {
		if err := loadConfigFile(cfg, configFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configFile, err)
		}
	}

	// 3. Override from environment
	_ = godotenv.Load()
	loadFromEnv(cfg)

	// 4. Parse CLI flags (they override everything)
	registerFlags(cfg, fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 5. Compute derived values
	if err := finalize(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.RoadmapFile = DefaultRoadmapFile
	cfg.DocsDir = DefaultDocsDir
	cfg.ImportDir = DefaultImportDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// findProjectConfigFile looks for roadmap.toml or .roadmap.toml in the
// current directory.
func findProjectConfigFile() string {
	for _, name := range []string{"roadmap.toml", ".roadmap.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("ROADMAP_FILE"); v != "" {
		cfg.RoadmapFile = v
	}
	if v := os.Getenv("ROADMAP_SCHEMA_FILE"); v != "" {
		cfg.SchemaFile = v
	}
	if v := os.Getenv("ROADMAP_DOCS_DIR"); v != "" {
		cfg.DocsDir = v
	}
	if v := os.Getenv("ROADMAP_IMPORT_DIR"); v != "" {
		cfg.ImportDir = v
	}
	if v := os.Getenv("ROADMAP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ROADMAP_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("GH_REPO"); v != "" {
		cfg.Repo = v
	}
}

func registerFlags(cfg *Config, fs *flag.FlagSet) {
	fs.StringVar(&cfg.RoadmapFile, "file", cfg.RoadmapFile, "Roadmap JSON file")
	fs.StringVar(&cfg.SchemaFile, "schema", cfg.SchemaFile, "JSON Schema file for validation")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
}

// finalize computes the project root by walking upward from the
// working directory until the roadmap file is found.
func finalize(cfg *Config) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	name := cfg.RoadmapFile
	if name == "" {
		name = roadmap.DefaultFile
		cfg.RoadmapFile = name
	}
	if filepath.IsAbs(name) {
		cfg.ProjectRoot = filepath.Dir(name)
		return nil
	}
	cfg.ProjectRoot = roadmap.FindRoot(wd, filepath.Base(name))
	return nil
}
