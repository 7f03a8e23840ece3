package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Prometheus Prometheus
	Redis      Redis
	Mail       Mail
	Search     Search
	Blog       Blog
}

type HTTPServer struct {
	Address         string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	// BaseURL overrides the scheme and host used for absolute post links.
	BaseURL string
}

type Database struct {
	Username          string
	Password          string
	Host              string
	Port              string
	DbName            string
	MigrationsEnabled bool
}

type Prometheus struct {
	Address string
	Port    int
}

type Redis struct {
	Enabled  bool
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
	PostTTL  time.Duration
}

type Mail struct {
	Backend  string
	Host     string
	Port     int
	Username string
	Password string
	From     string
	TLS      bool
}

type Search struct {
	Backend         string
	IndexPath       string
	Limit           int
	ReindexInterval time.Duration
}

type Blog struct {
	PageSize     int
	SimilarLimit int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.read_timeout", 15*time.Second)
	v.SetDefault("http_server.write_timeout", 30*time.Second)
	v.SetDefault("http_server.shutdown_timeout", 30*time.Second)
	v.SetDefault("http_server.base_url", "")

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "blog-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "blog")
	v.SetDefault("database.migrations_enabled", true)

	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9103)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "redis")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.post_ttl", 5*time.Minute)

	v.SetDefault("mail.backend", "console")
	v.SetDefault("mail.host", "localhost")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "blog@example.com")
	v.SetDefault("mail.tls", true)

	v.SetDefault("search.backend", "postgres")
	v.SetDefault("search.index_path", "data/posts.bleve")
	v.SetDefault("search.limit", 50)
	v.SetDefault("search.reindex_interval", time.Minute)

	v.SetDefault("blog.page_size", 3)
	v.SetDefault("blog.similar_limit", 4)
}

// Load reads ./config/config.yaml if present and applies BLOG_* environment overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("blog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}
	return cfg
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:         v.GetString("http_server.address"),
			Port:            v.GetInt("http_server.port"),
			ReadTimeout:     v.GetDuration("http_server.read_timeout"),
			WriteTimeout:    v.GetDuration("http_server.write_timeout"),
			ShutdownTimeout: v.GetDuration("http_server.shutdown_timeout"),
			BaseURL:         v.GetString("http_server.base_url"),
		},
		Database: Database{
			Username:          v.GetString("database.username"),
			Password:          v.GetString("database.password"),
			Host:              v.GetString("database.host"),
			Port:              v.GetString("database.port"),
			DbName:            v.GetString("database.db_name"),
			MigrationsEnabled: v.GetBool("database.migrations_enabled"),
		},
		Prometheus: Prometheus{
			Address: v.GetString("prometheus.address"),
			Port:    v.GetInt("prometheus.port"),
		},
		Redis: Redis{
			Enabled:  v.GetBool("redis.enabled"),
			Address:  v.GetString("redis.address"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			PoolSize: v.GetInt("redis.pool_size"),
			PostTTL:  v.GetDuration("redis.post_ttl"),
		},
		Mail: Mail{
			Backend:  v.GetString("mail.backend"),
			Host:     v.GetString("mail.host"),
			Port:     v.GetInt("mail.port"),
			Username: v.GetString("mail.username"),
			Password: v.GetString("mail.password"),
			From:     v.GetString("mail.from"),
			TLS:      v.GetBool("mail.tls"),
		},
		Search: Search{
			Backend:         v.GetString("search.backend"),
			IndexPath:       v.GetString("search.index_path"),
			Limit:           v.GetInt("search.limit"),
			ReindexInterval: v.GetDuration("search.reindex_interval"),
		},
		Blog: Blog{
			PageSize:     v.GetInt("blog.page_size"),
			SimilarLimit: v.GetInt("blog.similar_limit"),
		},
	}
}

func (d Database) DSN() string {
	return "postgresql://" + d.Username + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.DbName + "?sslmode=disable"
}
