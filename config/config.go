// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDBDrivers = []string{"sqlite", "postgres"}
	validEnvs      = []string{"development", "production"}
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.env", "app_env")
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")

	v.BindEnv("jwt.secret", "jwt_secret")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.dsn", "db_dsn")

	v.BindEnv("cloudflare.account_id", "cloudflare_account_id")
	v.BindEnv("cloudflare.access_key_id", "cloudflare_access_key_id")
	v.BindEnv("cloudflare.secret_access_key", "cloudflare_secret_access_key")
	v.BindEnv("cloudflare.bucket", "cloudflare_bucket")
	v.BindEnv("cloudflare.public_url", "cloudflare_public_url")

	v.BindEnv("upload.max_size", "upload_max_size")

	v.BindEnv("reconcile.enabled", "reconcile_enabled")

	//
	// Defaults
	//
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "database.db")

	v.SetDefault("upload.max_size", 5<<20)

	v.SetDefault("reconcile.enabled", false)
	v.SetDefault("reconcile.schedule", "@daily")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); ok {
			return errors.New("config.toml file is missing")
		}

		return fmt.Errorf("failed to read config file, %w", err)
	}

	if !slices.Contains(validEnvs, v.GetString("app.env")) {
		return errors.New("app.env must be development or production")
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validDBDrivers, v.GetString("db.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("db.dsn") == "" {
		return errors.New("database dsn can't be empty")
	}

	if v.GetInt64("upload.max_size") <= 0 {
		return errors.New("upload max size must be positive")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetString("cloudflare.account_id") == "" {
		return errors.New("account id can't be empty")
	}
	if v.GetString("cloudflare.access_key_id") == "" {
		return errors.New("account access id can't be empty")
	}
	if v.GetString("cloudflare.secret_access_key") == "" {
		return errors.New("secret access key can't be empty")
	}
	if v.GetString("cloudflare.bucket") == "" {
		return errors.New("bucket can't be empty")
	}
	if v.GetString("cloudflare.public_url") == "" {
		return errors.New("public url can't be empty")
	}

	return nil
}

// Production reports whether the app runs with production error redaction.
func Production() bool {
	return v.GetString("app.env") == "production"
}
