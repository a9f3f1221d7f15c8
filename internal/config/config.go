// Package config provides application configuration loading.
// Uses TOML configuration files with multi-path lookup.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// MainConfig holds application basics.
type MainConfig struct {
	AppName string `toml:"appName"` // application name, used in log tagging
	Host    string `toml:"host"`    // listen address, e.g. "0.0.0.0"
	Port    int    `toml:"port"`    // listen port, e.g. 8000
}

// PostgresConfig holds database connection settings.
type PostgresConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"` // default 5432
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
	SSLMode      string `toml:"sslMode"` // "disable" for local development
}

// RedisConfig holds cache connection settings.
type RedisConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`     // default 6379
	Password string `toml:"password"` // empty when unauthenticated
	Db       int    `toml:"db"`       // database index, default 0
}

// MailConfig holds SMTP dispatch settings for invitation emails.
type MailConfig struct {
	Host     string `toml:"host"`     // SMTP server address
	Port     int    `toml:"port"`     // SMTP port, e.g. 587
	Username string `toml:"username"` // SMTP auth user
	Password string `toml:"password"` // SMTP auth password
	From     string `toml:"from"`     // sender address on outbound mail
}

// LogConfig holds zap/lumberjack settings.
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // log directory
	FileName   string `toml:"fileName"`   // log file name
	MaxSize    int    `toml:"maxSize"`    // max size per file (MB)
	MaxBackups int    `toml:"maxBackups"` // max rotated files kept
	MaxAge     int    `toml:"maxAge"`     // max age of rotated files (days)
	Level      string `toml:"level"`      // debug, info, warn, error
}

// KafkaConfig holds chat fan-out settings.
type KafkaConfig struct {
	MessageMode string `toml:"messageMode"` // "channel" or "kafka"
	HostPort    string `toml:"hostPort"`    // broker address, e.g. "localhost:9092"
	ChatTopic   string `toml:"chatTopic"`   // event chat topic
	Partition   int    `toml:"partition"`
	Timeout     int    `toml:"timeout"` // producer write timeout in seconds
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret             string `toml:"secret"`             // signing key, 32+ chars recommended
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // minutes
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // hours
}

// Config aggregates all sections.
type Config struct {
	MainConfig     `toml:"mainConfig"`
	PostgresConfig `toml:"postgresConfig"`
	RedisConfig    `toml:"redisConfig"`
	MailConfig     `toml:"mailConfig"`
	LogConfig      `toml:"logConfig"`
	KafkaConfig    `toml:"kafkaConfig"`
	JWTConfig      `toml:"jwtConfig"`
}

// Lazily loaded singleton.
var config *Config

// LoadConfig tries the candidate paths in order and stops at the first
// readable configuration file.
func LoadConfig() error {
	if config == nil {
		config = new(Config)
	}
	paths := []string{
		"configs/config_local.toml", // local development overrides (preferred)
		"configs/config.toml",
		"../../configs/config_local.toml", // when run from a subdirectory
		"../../configs/config.toml",
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig returns the configuration singleton, loading it on first use.
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig() // fall back to zero values when no file is present
	}
	return config
}
