package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is built once at startup and passed to every component that needs
// it. Nothing reads the environment after Load returns.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Port   string `env:"PORT" envDefault:"3001"`

	DatabaseDSN string `env:"DATABASE_DSN"`

	JWTSecret        string        `env:"JWT_SECRET"`
	JWTRefreshSecret string        `env:"JWT_REFRESH_SECRET"`
	AccessTokenTTL   time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`
	RefreshTokenTTL  time.Duration `env:"REFRESH_TOKEN_EXPIRES_IN" envDefault:"168h"`

	CloudinaryURL string `env:"CLOUDINARY_URL"`

	KafkaBroker   string `env:"KAFKA_BROKER"`
	KafkaTopic    string `env:"KAFKA_TOPIC" envDefault:"storefront.events"`
	KafkaGroupID  string `env:"KAFKA_GROUP_ID" envDefault:"storefront-api"`
	KafkaUsername string `env:"KAFKA_USERNAME"`
	KafkaPassword string `env:"KAFKA_PASSWORD"`

	InstagramAPIBase string `env:"INSTAGRAM_API_BASE" envDefault:"https://graph.instagram.com"`

	AllowOrigins string `env:"ALLOW_ORIGINS" envDefault:"*"`
	FrontendPort string `env:"FRONTEND_PORT" envDefault:"5173"`

	SeedDemoData bool `env:"SEED_DEMO_DATA"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
