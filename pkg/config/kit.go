package config

// Kit holds the settings of the kit command line tool.
type Kit struct {
	// Env selects the logger preset: "production" or "prod" for JSON output,
	// anything else for development text output.
	Env string `env:"KIT_ENV" envDefault:"development"`

	// Language is the BCP 47 tag used for locale-aware parsing and messages.
	Language string `env:"KIT_LANGUAGE" envDefault:"en"`

	// Translations is a catalog file or a directory of catalog files.
	Translations string `env:"KIT_TRANSLATIONS"`

	LogLevel  string `env:"KIT_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"KIT_LOG_FORMAT"`

	// Context is one of internal, interface or request.
	Context string `env:"KIT_CONTEXT" envDefault:"interface"`
	Strict  bool   `env:"KIT_STRICT" envDefault:"false"`

	// InfoLevel is one of enduser, technical or internal.
	InfoLevel string `env:"KIT_INFO_LEVEL" envDefault:"enduser"`
}
