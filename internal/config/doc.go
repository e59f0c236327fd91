// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. Project config file (roadmap.toml or .roadmap.toml in the working directory)
// 3. Environment variables (ROADMAP_*, GH_REPO), with .env loaded first
// 4. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// The project root is discovered once at load time by walking upward
// from the working directory until the roadmap file is found, and is
// threaded through every component as a plain value.
package config
