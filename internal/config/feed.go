package config

type Feed struct {
	DSN string `env:"DSN" envDefault:"memory://"`
}
