package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	httpapi "github.com/tavolaworks/trattoria-manager/internal/api/http"
	"github.com/tavolaworks/trattoria-manager/internal/apisrv/auth"
	"github.com/tavolaworks/trattoria-manager/internal/notify"
	"github.com/tavolaworks/trattoria-manager/internal/store"
	"github.com/tavolaworks/trattoria-manager/log"
)

// Config represents the global configuration for the service.
type Config struct {
	DB     store.Config   `mapstructure:"mysql"`
	Logger log.Config     `mapstructure:"logger"`
	HTTP   httpapi.Config `mapstructure:"http"`
	Auth   auth.Config    `mapstructure:"auth"`
	Notify notify.Config  `mapstructure:"notify"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	// Bind common environment variables to config keys so the simpler
	// flat names work too.
	bindEnvVars()

	// Config file is optional, env vars alone can carry a deployment.
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/trattoria-manager")
		viper.AddConfigPath("/etc/trattoria-manager")
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Assemble the MySQL DSN from individual env vars when it is not set
	// directly.
	if config.DB.DSN == "" {
		mysqlHost := os.Getenv("MYSQL_HOST")
		mysqlPort := os.Getenv("MYSQL_PORT")
		mysqlUser := os.Getenv("MYSQL_USER")
		mysqlPassword := os.Getenv("MYSQL_PASSWORD")
		mysqlDatabase := os.Getenv("MYSQL_DATABASE")

		if mysqlHost != "" {
			if mysqlPort == "" {
				mysqlPort = "3306"
			}
			if mysqlUser != "" && mysqlPassword != "" && mysqlDatabase != "" {
				tls := ""
				if config.DB.TLSCAPath != "" {
					tls = "&tls=custom"
				}
				config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=true%s",
					mysqlUser, mysqlPassword, mysqlHost, mysqlPort, mysqlDatabase, tls)
			}
		}
	}

	return &config, nil
}

// bindEnvVars binds environment variables to config keys
func bindEnvVars() {
	// MySQL
	viper.BindEnv("mysql.dsn", "MYSQL_DSN")
	viper.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	viper.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	viper.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Auth
	viper.BindEnv("auth.jwtSecret", "AUTH_JWT_SECRET")
	viper.BindEnv("auth.masterPassword", "AUTH_MASTER_PASSWORD")
	viper.BindEnv("auth.passwordHasherSaltSize", "AUTH_PASSWORD_HASHER_SALT_SIZE")
	viper.BindEnv("auth.passwordHasherIterations", "AUTH_PASSWORD_HASHER_ITERATIONS")
	viper.BindEnv("auth.jwtttl", "AUTH_JWT_TTL")

	// Notifications
	viper.BindEnv("notify.worker_interval", "NOTIFY_WORKER_INTERVAL")
	viper.BindEnv("notify.sender.gateway_base_url", "NOTIFY_GATEWAY_BASE_URL")
	viper.BindEnv("notify.sender.gateway_api_key", "NOTIFY_GATEWAY_API_KEY")
	viper.BindEnv("notify.sender.from_phone", "NOTIFY_FROM_PHONE")
	viper.BindEnv("notify.sender.sendgrid_api_key", "NOTIFY_SENDGRID_API_KEY")
	viper.BindEnv("notify.sender.from_email", "NOTIFY_FROM_EMAIL")
	viper.BindEnv("notify.sender.from_email_name", "NOTIFY_FROM_EMAIL_NAME")
}
