package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type StorageConfig struct {
	// Driver selects the store backing: "memory" or "postgres".
	Driver string `yaml:"driver"`
	Seed   bool   `yaml:"seed"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type TwilioConfig struct {
	AccountSID   string `yaml:"account_sid"`
	AuthToken    string `yaml:"auth_token"`
	FromNumber   string `yaml:"from_number"`
	NotifyNumber string `yaml:"notify_number"`
}

type SchedulerConfig struct {
	OverdueSpec string `yaml:"overdue_spec"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Twilio    TwilioConfig    `yaml:"twilio"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// Load builds the configuration from defaults, an optional config.yaml,
// and environment variables, in that order of precedence.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Server:    ServerConfig{Port: "8080"},
		Storage:   StorageConfig{Driver: "memory", Seed: true},
		Scheduler: SchedulerConfig{OverdueSpec: "0 9 * * *"},
	}

	if f, err := os.Open("config.yaml"); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			log.Fatalf("failed to decode config.yaml: %v", err)
		}
	}

	overrideFromEnv(cfg)
	return cfg
}

func overrideFromEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if driver := os.Getenv("STORAGE_DRIVER"); driver != "" {
		cfg.Storage.Driver = driver
	}
	if seed := os.Getenv("SEED_SAMPLE_DATA"); seed != "" {
		cfg.Storage.Seed = seed == "true" || seed == "1"
	}
	if url := os.Getenv("DB_URL"); url != "" {
		cfg.Database.URL = url
	}
	if sid := os.Getenv("TWILIO_ACCOUNT_SID"); sid != "" {
		cfg.Twilio.AccountSID = sid
	}
	if token := os.Getenv("TWILIO_AUTH_TOKEN"); token != "" {
		cfg.Twilio.AuthToken = token
	}
	if from := os.Getenv("TWILIO_PHONE_NUMBER"); from != "" {
		cfg.Twilio.FromNumber = from
	}
	if notify := os.Getenv("NOTIFY_PHONE_NUMBER"); notify != "" {
		cfg.Twilio.NotifyNumber = notify
	}
	if spec := os.Getenv("OVERDUE_CRON"); spec != "" {
		cfg.Scheduler.OverdueSpec = spec
	}
}
