// Package db は、スキーマの初期化と sqlc で生成されたクエリを提供します。
package db

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pressly/goose/v3"
)

//go:embed schema/*.sql
var embedMigrations embed.FS

const schemaDir = "schema"

// gooseLogger は goose の出力を slog の debug レベルに流します。
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	slog.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}

func configure() error {
	// goose の設定
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{})

	// SQLite 用に goose を設定
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// Migrate はデータベースに対してスキーマを適用します。
// 適用済みのスキーマはスキップされるため、起動のたびに呼んでも安全です。
func Migrate(conn *sql.DB) error {
	if err := configure(); err != nil {
		return err
	}
	if err := goose.Up(conn, schemaDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Reset はスキーマを削除して再適用します。データはすべて失われ、IDの採番も初期化されます。
func Reset(conn *sql.DB) error {
	if err := configure(); err != nil {
		return err
	}
	if err := goose.Reset(conn, schemaDir); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	if err := goose.Up(conn, schemaDir); err != nil {
		return fmt.Errorf("failed to recreate schema: %w", err)
	}
	return nil
}
