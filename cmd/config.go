package cmd

// Config holds runtime settings, populated from the environment.
type Config struct {
	CurrencyPrefix string `env:"CURRENCY_PREFIX" envDefault:"$"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"text"`
}
