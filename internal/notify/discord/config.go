package discord

// Config contains Discord webhook settings.
type Config struct {
	WebhookURL string `env:"DISCORD_WEBHOOK_URL"`
	Username   string `env:"DISCORD_USERNAME"`
	Timeout    int    `env:"DISCORD_TIMEOUT"     envDefault:"10"`
}
