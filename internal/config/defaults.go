package config

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Organize: Organize{
			DefaultMode: "extension",
			Recursive:   false,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}
