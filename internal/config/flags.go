package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile = flag.String("log-file", "", "Write logs to this file")
	flagInput   = flag.String("input", "", "Wire input encoding: hex or base64")
	flagOutput  = flag.String("output", "", "Output format: yaml or spew")
	flagStrict  = flag.Bool("strict", false, "Fail on truncated texture entries")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagInput != "" {
		cfg.Codec.InputFormat = *flagInput
	}
	if *flagOutput != "" {
		cfg.Output.Format = *flagOutput
	}
	if *flagStrict {
		cfg.Codec.StrictDecode = true
	}
}
