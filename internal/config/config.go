package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string        `mapstructure:"PORT"`
	Environment                   string        `mapstructure:"ENVIRONMENT"`
	DatabasePath                  string        `mapstructure:"DATABASE_PATH"`
	JWTSecret                     string        `mapstructure:"JWT_SECRET"`
	JWTExpiresIn                  time.Duration `mapstructure:"JWT_EXPIRES_IN"`
	FrontendURL                   string        `mapstructure:"FRONTEND_URL"`
	EnableCORS                    bool          `mapstructure:"ENABLE_CORS"`
	DiscordClientID               string        `mapstructure:"DISCORD_CLIENT_ID"`
	DiscordClientSecret           string        `mapstructure:"DISCORD_CLIENT_SECRET"`
	DiscordRedirectURL            string        `mapstructure:"DISCORD_REDIRECT_URL"`
	DiscordBotToken               string        `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string        `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

// DiscordLoginEnabled reports whether the Discord OAuth sign-in is configured.
func (c *Config) DiscordLoginEnabled() bool {
	return c.DiscordClientID != "" && c.DiscordClientSecret != ""
}

func LoadConfig() *Config {
	config, err := Load(viper.New())
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	return config
}

// Load reads the configuration through v. An optional env-style file is
// read from CONFIG_FILE; environment variables always win over it.
func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "3001")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("DATABASE_PATH", "tours.db")
	v.SetDefault("JWT_SECRET", "your-secret-key")
	v.SetDefault("JWT_EXPIRES_IN", "24h")
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("ENABLE_CORS", true)
	v.SetDefault("DISCORD_REDIRECT_URL", "http://localhost:3001/api/auth/discord/callback")

	v.BindEnv("CONFIG_FILE")
	v.BindEnv("PORT")
	v.BindEnv("ENVIRONMENT")
	v.BindEnv("DATABASE_PATH")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("JWT_EXPIRES_IN")
	v.BindEnv("FRONTEND_URL")
	v.BindEnv("ENABLE_CORS")
	v.BindEnv("DISCORD_CLIENT_ID")
	v.BindEnv("DISCORD_CLIENT_SECRET")
	v.BindEnv("DISCORD_REDIRECT_URL")
	v.BindEnv("DISCORD_BOT_TOKEN")
	v.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")

	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
