// tetool is a CLI utility for inspecting and building packed texture entries.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sl/internal/config"
	"github.com/Faultbox/midgard-sl/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	t := &tool{cfg: cfg, out: os.Stdout, in: os.Stdin}

	switch command := args[0]; command {
	case "decode", "d":
		err = t.cmdDecode(args[1:])
	case "encode", "e":
		err = t.cmdEncode(args[1:])
	case "info", "i":
		err = t.cmdInfo(args[1:])
	case "new":
		err = t.cmdNew(args[1:])
	case "image":
		err = t.cmdImage(args[1:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tetool - texture entry utility

Usage:
  tetool [flags] <command> [args]

Commands:
  decode <data|->        Decode a packed texture entry to yaml (or spew)
  encode <file.yaml|->   Encode a yaml face list to a packed texture entry
  info <data|->          Show faces, truncation and digest of a packed entry
  new                    Print a default-only entry for the configured texture
  image <data|->         Decode an ObjectImage message body

Flags:
  -config <path>   Config file (default ./tetool.yaml or user config dir)
  -input hex|base64
  -output yaml|spew
  -strict          Fail when a texture entry is truncated
  -debug           Enable debug logging
  -log-file <path> Write logs to this file

Examples:
  tetool decode 89556747...
  tetool -output spew decode -
  tetool -input base64 encode faces.yaml`)
}
