package config

import "path/filepath"

// Default values.
const (
	DefaultRoadmapFile = "roadmap.json"
	DefaultDocsDir     = "docs"
	DefaultImportDir   = "tools/github"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// Config holds the full configuration for the roadmap CLI.
type Config struct {
	// Paths, relative to the project root unless absolute
	RoadmapFile string `toml:"roadmap_file"`
	SchemaFile  string `toml:"schema_file"`
	DocsDir     string `toml:"docs_dir"`
	ImportDir   string `toml:"import_dir"`

	// Publishing
	Repo string `toml:"repo"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// RoadmapPath returns the absolute path of the roadmap file.
func (c *Config) RoadmapPath() string {
	return c.resolve(c.RoadmapFile)
}

// SchemaPath returns the absolute path of the schema file, or "" when
// no schema is configured.
func (c *Config) SchemaPath() string {
	if c.SchemaFile == "" {
		return ""
	}
	return c.resolve(c.SchemaFile)
}

// DocsPath returns the absolute path of the docs output directory.
func (c *Config) DocsPath() string {
	return c.resolve(c.DocsDir)
}

// ImportPath returns the absolute path of the issues-import output
// directory.
func (c *Config) ImportPath() string {
	return c.resolve(c.ImportDir)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectRoot, path)
}
