package config

import "time"

// Config represents the application configuration
type Config struct {
	Environment  string             `mapstructure:"environment" yaml:"environment"`
	Server       ServerConfig       `mapstructure:"server" yaml:"server"`
	Database     DatabaseConfig     `mapstructure:"database" yaml:"database"`
	Redis        RedisConfig        `mapstructure:"redis" yaml:"redis"`
	Logging      LoggingConfig      `mapstructure:"logging" yaml:"logging"`
	Auth         AuthConfig         `mapstructure:"auth" yaml:"auth"`
	Comment      CommentConfig      `mapstructure:"comment" yaml:"comment"`
	Notification NotificationConfig `mapstructure:"notification" yaml:"notification"`
}

// ServerConfig represents server configuration settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig represents database configuration settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Dbname   string `mapstructure:"dbname"`
	Port     int    `mapstructure:"port"`
	Sslmode  string `mapstructure:"sslmode"`
	Timezone string `mapstructure:"timezone"`
	Pool     struct {
		MaxOpen int `mapstructure:"maxOpen"`
		MaxIdle int `mapstructure:"maxIdle"`
	} `mapstructure:"pool"`
}

// RedisConfig represents Redis configuration settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	Output      string `mapstructure:"output" yaml:"output"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// AuthConfig represents authentication configuration settings
type AuthConfig struct {
	JWT struct {
		Secret         string        `mapstructure:"secret"`
		AccessTokenTTL time.Duration `mapstructure:"accessTokenTTL"`
	} `mapstructure:"jwt"`
}

// CommentConfig represents comment subsystem configuration settings
type CommentConfig struct {
	// OnDelete selects what happens to replies when their parent comment is
	// deleted: "orphan" leaves the rows in place, "cascade" deletes them,
	// "reattach" re-points them at the deleted comment's own parent.
	OnDelete    string `mapstructure:"onDelete"`
	DefaultSort string `mapstructure:"defaultSort"`
}

// NotificationConfig represents engagement event stream settings
type NotificationConfig struct {
	Enabled             bool   `mapstructure:"enabled"`
	CommentEventsStream string `mapstructure:"commentEventsStream"`
}
