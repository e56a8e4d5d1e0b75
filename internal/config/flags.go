package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile = flag.String("log-file", "", "Write logs to file")
	flagStrict  = flag.Bool("strict", false, "Treat validation warnings as errors")
)

// ParseFlags parses global command-line flags up to the first
// subcommand. Call this early in main().
func ParseFlags(args []string) []string {
	// flag.Parse stops at the first non-flag argument, which is the
	// subcommand; everything after it belongs to the subcommand.
	flag.CommandLine.Parse(args)
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
	if *flagStrict {
		cfg.Check.Strict = true
	}
}
