package config

import (
	"flag"

	"github.com/Faultbox/scop/pkg/mesh"
)

var (
	flagConfig         = flag.String("config", "", "Path to config file")
	flagDebug          = flag.Bool("debug", false, "Enable debug logging")
	flagUV             = flag.String("uv", "", "UV projection for models without texture coordinates (planar, spherical, cubic)")
	flagNoTextureCheck = flag.Bool("no-texture-check", false, "Skip texture map validation")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagUV != "" {
		proj, err := mesh.ParseProjection(*flagUV)
		if err != nil {
			return err
		}
		cfg.Loader.UVProjection = proj
	}
	if *flagNoTextureCheck {
		cfg.Loader.CheckTextures = false
	}
	return nil
}
