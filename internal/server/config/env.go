package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DotEnvFile is loaded into the process environment when present.
const DotEnvFile = ".env"

// bindings maps viper keys to the environment variables that feed them.
// Keys double as the field names accepted in a config file.
var bindings = map[string][]string{
	"http_addr":           {"HTTP_ADDR"},
	"signing_key":         {"JWT_SECRET", "SIGNING_KEY"},
	"token_ttl_seconds":   {"TOKEN_TTL_SECONDS"},
	"password_hash_cost":  {"PASSWORD_HASH_COST"},
	"storage_backend":     {"STORAGE_BACKEND"},
	"database_dsn":        {"DATABASE_DSN"},
	"user_table":          {"USER_TABLE"},
	"user_email_id_index": {"USER_EMAIL_ID_INDEX"},
	"aws_region":          {"AWS_REGION"},
	"dynamodb_endpoint":   {"DYNAMODB_ENDPOINT"},
	"log_level":           {"LOG_LEVEL"},
	"log_format":          {"LOG_FORMAT"},
	"log_backend":         {"LOG_BACKEND"},
}

// parseEnv overlays values from dotEnv, configFile (any format viper reads)
// and the environment onto cfg. Environment wins over the config file.
// Unset keys keep their current value.
func parseEnv(cfg *Config, dotEnv, configFile string) error {
	if dotEnv != "" {
		if err := godotenv.Load(dotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	v := viper.New()
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return err
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	setString(v, "http_addr", &cfg.HTTPAddr)
	setString(v, "signing_key", &cfg.SigningKey)
	if v.IsSet("token_ttl_seconds") {
		cfg.TokenTTL = time.Duration(v.GetInt64("token_ttl_seconds")) * time.Second
	}
	if v.IsSet("password_hash_cost") {
		cfg.PasswordHashCost = v.GetInt("password_hash_cost")
	}
	setString(v, "storage_backend", &cfg.StorageBackend)
	setString(v, "database_dsn", &cfg.DatabaseDSN)
	setString(v, "user_table", &cfg.UserTable)
	setString(v, "user_email_id_index", &cfg.UserEmailIndex)
	setString(v, "aws_region", &cfg.AWSRegion)
	setString(v, "dynamodb_endpoint", &cfg.DynamoDBEndpoint)
	setString(v, "log_level", &cfg.LogLevel)
	setString(v, "log_format", &cfg.LogFormat)
	setString(v, "log_backend", &cfg.LogBackend)

	return nil
}

func setString(v *viper.Viper, key string, dst *string) {
	if v.IsSet(key) {
		*dst = v.GetString(key)
	}
}
