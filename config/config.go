// Package config はアプリケーション設定を管理します。
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load が参照する環境変数
const (
	EnvConfigPath  = "KIRJASTO_CONFIG"
	EnvDBPath      = "KIRJASTO_DB_PATH"
	EnvLogLevel    = "KIRJASTO_LOG_LEVEL"
	EnvDefaultYear = "KIRJASTO_DEFAULT_YEAR"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// SQLiteデータベースファイルのパス
	DatabasePath string `yaml:"databasePath"`

	// ログレベル（debug, info, warn, error）
	LogLevel string `yaml:"logLevel"`

	// 年の指定がない集計で使う年
	DefaultYear int `yaml:"defaultYear"`
}

// Default は何も設定されていない場合の設定を返します。
func Default() *Config {
	return &Config{
		DatabasePath: filepath.Join(".", "data", "kirjasto.db"),
		LogLevel:     "info",
		DefaultYear:  time.Now().Year(),
	}
}

// Load は設定を読み込み、Configインスタンスを生成します。後の設定ほど優先されます:
// デフォルト値、path（または $KIRJASTO_CONFIG）のYAMLファイル、環境変数。
// 環境変数は .env.local と .env から補われます。
func Load(path string) (*Config, error) {
	cfg := Default()

	loadEnvFiles()

	// 設定ファイルの読み込み
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// 環境変数による上書き
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvDefaultYear); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvDefaultYear, err)
		}
		cfg.DefaultYear = year
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値を検証します。
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return errors.New("databasePath is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown logLevel %q", c.LogLevel)
	}
	if c.DefaultYear < 1 || c.DefaultYear > 9999 {
		return fmt.Errorf("defaultYear %d out of range", c.DefaultYear)
	}
	return nil
}

// loadEnvFiles は dotenv ファイルから環境変数を読み込みます。
// godotenv は設定済みの変数を上書きしないため、優先度の高い .env.local を先に読みます。
// 実行環境で設定された変数はどちらのファイルよりも優先されます。
func loadEnvFiles() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
}
