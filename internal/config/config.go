package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Store backends selectable at startup
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	ServerAddr string
	Store      StoreConfig
}

type StoreConfig struct {
	Backend  string
	Redis    RedisConfig
	Postgres PostgresConfig
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type PostgresConfig struct {
	User     string
	Password string
	Host     string
	Port     int
	Database string
}

// DSN builds the connection string for the postgres driver
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		p.Host, p.User, p.Password, p.Database, p.Port)
}

// Load parses command-line flags, with ECOBID_-prefixed environment
// variables as overrides (dashes become underscores).
func Load() Config {
	// server config
	pflag.String("server-addr", "0.0.0.0:8080", "")

	// ledger backend selection
	pflag.String("store-backend", BackendMemory, "ledger backend: memory, redis or postgres")

	// redis config
	pflag.String("redis-addr", "", "")
	pflag.String("redis-password", "", "")
	pflag.Int("redis-db", 0, "")
	pflag.String("redis-key-prefix", "ecobid:", "")

	// db config
	pflag.String("db-user", "", "")
	pflag.String("db-password", "", "")
	pflag.String("db-host", "", "")
	pflag.Int("db-port", 5432, "")
	pflag.String("db-database", "", "")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("ECOBID")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return Config{
		ServerAddr: viper.GetString("server-addr"),
		Store: StoreConfig{
			Backend: viper.GetString("store-backend"),
			Redis: RedisConfig{
				Addr:      viper.GetString("redis-addr"),
				Password:  viper.GetString("redis-password"),
				DB:        viper.GetInt("redis-db"),
				KeyPrefix: viper.GetString("redis-key-prefix"),
			},
			Postgres: PostgresConfig{
				User:     viper.GetString("db-user"),
				Password: viper.GetString("db-password"),
				Host:     viper.GetString("db-host"),
				Port:     viper.GetInt("db-port"),
				Database: viper.GetString("db-database"),
			},
		},
	}
}
