// scop inspects OBJ and FDF models the way the renderer will load them.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/scop/internal/config"
	"github.com/Faultbox/scop/internal/logger"
	"github.com/Faultbox/scop/pkg/formats"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Log.Debug("configuration loaded",
		zap.Stringer("uv_projection", cfg.Loader.UVProjection),
		zap.Bool("check_textures", cfg.Loader.CheckTextures),
		zap.String("log_level", cfg.Logging.Level))

	if err := run(os.Stdout, args, loadOptions(cfg, logger.Log)); err != nil {
		logger.Log.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// loadOptions maps the loader config onto parser options.
func loadOptions(cfg *config.Config, log *zap.Logger) formats.Options {
	return formats.Options{
		Projection:    cfg.Loader.UVProjection,
		CheckTextures: cfg.Loader.CheckTextures,
		Logger:        log,
	}
}

func run(w io.Writer, args []string, opts formats.Options) error {
	command, rest := args[0], args[1:]

	switch command {
	case "info":
		return cmdInfo(w, rest, opts)
	case "materials", "mtl":
		return cmdMaterials(w, rest, opts)
	case "groups":
		return cmdGroups(w, rest, opts)
	case "dump":
		return cmdDump(w, rest, opts)
	case "watch":
		return cmdWatch(w, rest, opts)
	case "help", "-h", "--help":
		printUsage(w)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `scop - OBJ/FDF model inspector

Usage:
  scop [flags] <command> [options] <file>

Commands:
  info <model>                      Show geometry, bounds and camera distance
  materials <model>                 List materials and texture maps
  groups <model>                    List per-material triangle groups
  dump [-yaml] [-n N] <model>       Print a summary and the first N vertices
  watch <model>                     Reload and print info whenever the file changes

Flags:
  -config <path>                    Config file (default ./scop.yaml or user config dir)
  -debug                            Enable debug logging
  -uv <planar|spherical|cubic>      UV projection when the model has no texture coordinates
  -no-texture-check                 Skip texture map validation

Examples:
  scop info models/42.obj
  scop -uv cubic dump -yaml models/teapot.obj
  scop watch maps/pyra.fdf`)
}
