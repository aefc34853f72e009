package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
	} `yaml:"email"`

	// Один подписывающий секрет на вид аккаунта.
	// Токен, выданный секретом одного вида, не проходит проверку у другого.
	JWT struct {
		ClientSecret   string `yaml:"client_secret"`
		BusinessSecret string `yaml:"business_secret"`
		AdminSecret    string `yaml:"admin_secret"`

		LoginTTLHours   int `yaml:"login_ttl_hours"`
		ConfirmTTLHours int `yaml:"confirm_ttl_hours"`
		ResetTTLMinutes int `yaml:"reset_ttl_minutes"`
	} `yaml:"jwt"`

	FirstAdminEmail    string `yaml:"-"`
	FirstAdminPassword string `yaml:"-"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию из config.yaml или, в тестовом
// режиме, из переменных окружения (когда задан DATABASE_URL).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	} else {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))

		cfg.JWT.ClientSecret = os.Getenv("JWT_KEY_CLIENT")
		cfg.JWT.BusinessSecret = os.Getenv("JWT_KEY_BUSINESS")
		cfg.JWT.AdminSecret = os.Getenv("JWT_KEY_ADMIN")

		cfg.Email.SMTPHost = "smtp.test.com"
		cfg.Email.SMTPPort = 587
		cfg.Email.FromEmail = "noreply@servhub.test"
	}

	applyDefaults(&cfg)

	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.JWT.LoginTTLHours <= 0 {
		cfg.JWT.LoginTTLHours = 7 * 24
	}
	if cfg.JWT.ConfirmTTLHours <= 0 {
		cfg.JWT.ConfirmTTLHours = 24
	}
	if cfg.JWT.ResetTTLMinutes <= 0 {
		// Срок reset-токена фиксирован: один час
		cfg.JWT.ResetTTLMinutes = 60
	}
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 3000
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
