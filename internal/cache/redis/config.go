package redis

// Config contains Redis row cache settings. An empty Addr disables caching.
type Config struct {
	Addr      string `env:"REDIS_ADDR"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB"         envDefault:"0"`
	TTL       int    `env:"CACHE_TTL"        envDefault:"21600"`
	KeyPrefix string `env:"CACHE_KEY_PREFIX" envDefault:"spendwatch"`
}

// Enabled reports whether a Redis address is configured.
func (c Config) Enabled() bool {
	return c.Addr != ""
}
