package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrNoEnvFile = errors.New("could not find an env file")

// envSearchPaths is the fixed search order for the backend env file.
// First match wins.
var envSearchPaths = []string{
	filepath.Join("backend", ".env"),
	".env",
	filepath.Join("..", "backend", ".env"),
}

const (
	defaultDBUser = "root"
	defaultDBPass = "pass123"
	defaultDBHost = "127.0.0.1"
	defaultDBPort = "3306"
	defaultDBName = "learning"
)

// findEnvFile returns the first existing path from the search order.
func findEnvFile() (string, error) {
	for _, p := range envSearchPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: place .env in backend/.env or the working directory", ErrNoEnvFile)
}

// loadEnvFile loads the given env file, or walks the search order when the
// path is empty. Failure is fatal to the run - the exporter never connects
// with a half-configured environment.
func loadEnvFile(path string) (string, error) {
	if path == "" {
		found, err := findEnvFile()
		if err != nil {
			return "", err
		}
		path = found
	}

	if err := godotenv.Load(path); err != nil {
		return "", fmt.Errorf("load env file %s: %w", path, err)
	}

	return path, nil
}

// dbConfig holds the database connection settings sourced from environment
// variables, with defaults matching the backend's development setup.
type dbConfig struct {
	User string
	Pass string
	Host string
	Port string
	Name string
}

func loadDBConfig() dbConfig {
	v := viper.New()

	v.SetDefault("db_user", defaultDBUser)
	v.SetDefault("db_pass", defaultDBPass)
	v.SetDefault("db_host", defaultDBHost)
	v.SetDefault("db_port", defaultDBPort)
	v.SetDefault("db_name", defaultDBName)
	v.AutomaticEnv()

	return dbConfig{
		User: v.GetString("db_user"),
		Pass: v.GetString("db_pass"),
		Host: v.GetString("db_host"),
		Port: v.GetString("db_port"),
		Name: v.GetString("db_name"),
	}
}

// DSN assembles the driver specific connection string. The file-backed
// engines use db_name as a path.
func (c dbConfig) DSN(dbType string) string {
	switch dbType {
	case "postgres", "postgresql", "pg":
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			c.User, c.Pass, c.Host, c.Port, c.Name)
	case "sqlite", "sqlite3", "duck", "duckdb":
		return c.Name
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", c.User, c.Pass, c.Host, c.Port, c.Name)
	}
}

// defaultOutDir is a "data" directory next to the binary, falling back to the
// working directory when the executable path can't be resolved.
func defaultOutDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "data"
	}

	return filepath.Join(filepath.Dir(exe), "data")
}
