package config

const (
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultDisplayEnabled = true
	defaultDisplayLocale  = "pt-BR"
	defaultDisplayColor   = ColorAuto
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Display: Display{
			Enabled: defaultDisplayEnabled,
			Locale:  defaultDisplayLocale,
			Color:   defaultDisplayColor,
		},
	}
}
