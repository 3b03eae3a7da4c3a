package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Storage    Storage
	Mongo      Mongo
	Database   Database
	Prometheus Prometheus
	Redis      Redis
}

type HTTPServer struct {
	Address         string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type Storage struct {
	Type string
}

type Mongo struct {
	URI               string
	Scheme            string
	Host              string
	Username          string
	Password          string
	AppName           string
	DbName            string
	BlogsCollection   string
	BannersCollection string
	ConnectTimeout    time.Duration
}

// ConnectionURI returns the explicit URI when set, otherwise one built from
// the individual connection fields.
func (m Mongo) ConnectionURI() string {
	if m.URI != "" {
		return m.URI
	}

	u := url.URL{
		Scheme: m.Scheme,
		Host:   m.Host,
		Path:   "/",
	}
	if m.Username != "" {
		u.User = url.UserPassword(m.Username, m.Password)
	}

	q := url.Values{}
	q.Set("retryWrites", "true")
	q.Set("w", "majority")
	if m.AppName != "" {
		q.Set("appName", m.AppName)
	}
	u.RawQuery = q.Encode()

	return u.String()
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

func (d Database) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		d.Username,
		d.Password,
		d.Host,
		d.Port,
		d.DbName)
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
	TTL      time.Duration
}

func MustLoad() *Config {
	cfg, err := Load("./config")
	if err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}
	return cfg
}

// Load reads config.yaml from configPath when present, then applies
// environment overrides on top of the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:         v.GetString("http_server.address"),
			Port:            v.GetInt("http_server.port"),
			ReadTimeout:     v.GetDuration("http_server.read_timeout"),
			WriteTimeout:    v.GetDuration("http_server.write_timeout"),
			ShutdownTimeout: v.GetDuration("http_server.shutdown_timeout"),
		},
		Storage: Storage{
			Type: v.GetString("storage.type"),
		},
		Mongo: Mongo{
			URI:               v.GetString("mongo.uri"),
			Scheme:            v.GetString("mongo.scheme"),
			Host:              v.GetString("mongo.host"),
			Username:          v.GetString("mongo.username"),
			Password:          v.GetString("mongo.password"),
			AppName:           v.GetString("mongo.app_name"),
			DbName:            v.GetString("mongo.db_name"),
			BlogsCollection:   v.GetString("mongo.blogs_collection"),
			BannersCollection: v.GetString("mongo.banners_collection"),
			ConnectTimeout:    v.GetDuration("mongo.connect_timeout"),
		},
		Database: Database{
			Username:       v.GetString("database.username"),
			Password:       v.GetString("database.password"),
			Host:           v.GetString("database.host"),
			Port:           v.GetString("database.port"),
			DbName:         v.GetString("database.db_name"),
			MigrationsPath: v.GetString("database.migrations_path"),
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
			TTL:      v.GetDuration("redis.ttl"),
		},
	}

	switch config.Storage.Type {
	case StorageMongo, StoragePostgres, StorageMemory:
	default:
		return nil, fmt.Errorf("unknown storage type %q", config.Storage.Type)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.read_timeout", 10*time.Second)
	v.SetDefault("http_server.write_timeout", 10*time.Second)
	v.SetDefault("http_server.shutdown_timeout", 30*time.Second)

	v.SetDefault("storage.type", StorageMongo)

	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.scheme", "mongodb+srv")
	v.SetDefault("mongo.host", "cluster0.mongodb.net")
	v.SetDefault("mongo.username", "")
	v.SetDefault("mongo.password", "")
	v.SetDefault("mongo.app_name", "Cluster0")
	v.SetDefault("mongo.db_name", "assignmentDB")
	v.SetDefault("mongo.blogs_collection", "allBlogs")
	v.SetDefault("mongo.banners_collection", "allBanner")
	v.SetDefault("mongo.connect_timeout", 10*time.Second)

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "blog-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "blogservice")
	v.SetDefault("database.migrations_path", "migrations")

	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9103)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "redis")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.ttl", 5*time.Minute)
}

// bindLegacyEnv keeps the environment names existing deployments already set.
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"http_server.port": "PORT",
		"mongo.username":   "DB_USER",
		"mongo.password":   "DB_PASS",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	return nil
}
