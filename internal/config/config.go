// Package config handles loader configuration loading and management.
package config

import "github.com/Faultbox/scop/pkg/mesh"

// Config holds all scop settings.
type Config struct {
	Loader  LoaderConfig  `yaml:"loader"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoaderConfig holds geometry loading settings.
type LoaderConfig struct {
	UVProjection  mesh.Projection `yaml:"uv_projection"`  // planar, spherical or cubic
	CheckTextures bool            `yaml:"check_textures"` // Warn about unreadable texture maps
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Loader: LoaderConfig{
			UVProjection:  mesh.ProjectionSpherical,
			CheckTextures: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
