package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type Redis struct {
	Addr string
	DB   int
}

type Session struct {
	Secret      string
	Issuer      string
	Cookie      string
	TTL         time.Duration
	RememberTTL time.Duration
}

type Media struct {
	Bucket    string
	Region    string
	Endpoint  string
	BaseURL   string
	AccessKey string
	SecretKey string
}

type Config struct {
	Env          string
	HTTP         HTTP
	DB           DB
	Redis        Redis
	Session      Session
	Media        Media
	TemplatesDir string
}

func (c *Config) IsProd() bool { return c.Env == "prod" }

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TWCLONE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("env", "dev")
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 8080)
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "twitter_clone")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("session.cookie", "twclone_session")
	v.SetDefault("session.ttl_min", 60)
	v.SetDefault("session.remember_ttl_hours", 720)
	// Falls back to the embedded copies when the directory does not exist.
	v.SetDefault("templates.dir", "app/views/templates")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Env:  v.GetString("env"),
		HTTP: HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB:   DB{Host: v.GetString("db.host"), Port: v.GetInt("db.port"), User: v.GetString("db.user"), Pass: v.GetString("db.pass"), Name: v.GetString("db.name")},
		Redis: Redis{
			Addr: v.GetString("redis.addr"),
			DB:   v.GetInt("redis.db"),
		},
		Media: Media{
			Bucket:    v.GetString("media.bucket"),
			Region:    v.GetString("media.region"),
			Endpoint:  v.GetString("media.endpoint"),
			BaseURL:   v.GetString("media.base_url"),
			AccessKey: v.GetString("media.access_key"),
			SecretKey: v.GetString("media.secret_key"),
		},
		TemplatesDir: v.GetString("templates.dir"),
	}

	cfg.Session.Secret = v.GetString("session.secret")
	if cfg.Session.Secret == "" {
		if cfg.IsProd() {
			return nil, fmt.Errorf("session.secret is required in prod")
		}
		cfg.Session.Secret = "dev-secret"
	}
	cfg.Session.Issuer = v.GetString("session.issuer")
	if cfg.Session.Issuer == "" {
		cfg.Session.Issuer = "twitter-clone"
	}
	cfg.Session.Cookie = v.GetString("session.cookie")
	ttlMin := v.GetInt("session.ttl_min")
	if ttlMin <= 0 {
		ttlMin = 60
	}
	cfg.Session.TTL = time.Duration(ttlMin) * time.Minute
	rememberHours := v.GetInt("session.remember_ttl_hours")
	if rememberHours <= 0 {
		rememberHours = 720
	}
	cfg.Session.RememberTTL = time.Duration(rememberHours) * time.Hour

	return cfg, nil
}
