// Package store は、本の情報を SQLite ファイルに永続化する機能を提供します。
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stsysd/kirjasto/db"
	"github.com/stsysd/kirjasto/model"
)

// ErrStoreClosed は Close 後の操作で返されるエラーです。
var ErrStoreClosed = errors.New("store is closed")

// BookStore は本の保存と取得を行うインターフェースです。
type BookStore interface {
	// AddBook は新しい本を保存し、採番されたIDを本に設定します。
	AddBook(ctx context.Context, book *model.Book) error
	// GetAllBooks はすべての本を登録順に取得します。
	GetAllBooks(ctx context.Context) ([]*model.Book, error)
	// GetBook は指定されたIDの本を取得します。
	GetBook(ctx context.Context, id int64) (*model.Book, error)
	// Update は本の現在の値で保存済みの行を上書きします。
	Update(ctx context.Context, book *model.Book) error
	// DeleteBook は指定されたIDの本を削除します。存在しないIDは無視します。
	DeleteBook(ctx context.Context, id int64) error
	// ClearAll はすべての本を削除します。テーブルとID採番は残します。
	ClearAll(ctx context.Context) (int, error)
	// ResetSchema はテーブルを作り直します。データはすべて失われます。
	ResetSchema(ctx context.Context) error
	// Search はタイトル・著者・ジャンルから本を検索します。
	Search(ctx context.Context, query string) ([]*model.Book, error)
	// GetStats は蔵書全体の統計を集計します。
	GetStats(ctx context.Context) (*model.Stats, error)
	// YearlySummary は指定年に読了した本を集計します。
	YearlySummary(ctx context.Context, year int) (*model.YearlySummary, error)
	// FinishedPerDay は指定年の日ごとの読了数を集計します。
	FinishedPerDay(ctx context.Context, year int) ([]model.DailyCount, error)
	// Close はストアの接続を閉じます。
	Close() error
}

// SchemaFunc はデータベースのスキーマを操作する関数です（db.Migrate, db.Reset）。
type SchemaFunc func(conn *sql.DB) error

// SQLiteStore は単一の SQLite 接続を使用した BookStore の実装です。
type SQLiteStore struct {
	conn    *sql.DB
	queries *db.Queries
	reset   SchemaFunc
	closed  bool
}

var _ BookStore = (*SQLiteStore)(nil)

// NewSQLiteStore は新しい SQLiteStore を作成します。
// dbPath のファイルがなければ作成し、migrate でスキーマを適用します。
// reset は ResetSchema で使用されます。
func NewSQLiteStore(dbPath string, migrate, reset SchemaFunc) (*SQLiteStore, error) {
	// データディレクトリの作成（存在しない場合）
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, model.NewStorageError("open", fmt.Errorf("failed to create data directory: %w", err))
		}
	}

	// SQLiteデータベースへの接続
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, model.NewStorageError("open", fmt.Errorf("failed to connect to SQLite database: %w", err))
	}
	// ストアの生存期間中、接続は1本のみ
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, model.NewStorageError("open", fmt.Errorf("failed to open %s: %w", dbPath, err))
	}

	// テーブルの初期化
	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, model.NewStorageError("migrate", err)
	}
	slog.Debug("database ready", "path", dbPath)

	return &SQLiteStore{
		conn:    conn,
		queries: db.New(conn),
		reset:   reset,
	}, nil
}

func (s *SQLiteStore) ensureOpen(op string) error {
	if s.closed {
		return model.NewStorageError(op, ErrStoreClosed)
	}
	return nil
}

// AddBook は新しい本をデータベースに保存し、採番されたIDを本に書き戻します。
func (s *SQLiteStore) AddBook(ctx context.Context, book *model.Book) error {
	if err := s.ensureOpen("add"); err != nil {
		return err
	}
	if book.Persisted() {
		return fmt.Errorf("%w: id %d", model.ErrBookAlreadyPersisted, book.ID())
	}
	// バリデーション
	if err := book.Validate(); err != nil {
		return err
	}

	// sqlcで生成されたクエリを使用
	row := fromModel(book)
	id, err := s.queries.CreateBook(ctx, db.CreateBookParams{
		Title:        row.Title,
		Author:       row.Author,
		Pages:        row.Pages,
		Genre:        row.Genre,
		Owned:        row.Owned,
		CurrentPage:  row.CurrentPage,
		Status:       row.Status,
		DateAdded:    row.DateAdded,
		DateFinished: row.DateFinished,
		Rating:       row.Rating,
	})
	if err != nil {
		return model.NewStorageError("add", fmt.Errorf("failed to insert book: %w", err))
	}

	return book.SetID(id)
}

// GetAllBooks はすべての本を登録順に取得します。
func (s *SQLiteStore) GetAllBooks(ctx context.Context) ([]*model.Book, error) {
	if err := s.ensureOpen("list"); err != nil {
		return nil, err
	}
	rows, err := s.queries.ListBooks(ctx)
	if err != nil {
		return nil, model.NewStorageError("list", fmt.Errorf("failed to list books: %w", err))
	}
	return toModels(rows)
}

// GetBook は指定されたIDの本を取得します。見つからない場合は model.ErrBookNotFound を返します。
func (s *SQLiteStore) GetBook(ctx context.Context, id int64) (*model.Book, error) {
	if err := s.ensureOpen("get"); err != nil {
		return nil, err
	}
	row, err := s.queries.GetBook(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", model.ErrBookNotFound, id)
	}
	if err != nil {
		return nil, model.NewStorageError("get", fmt.Errorf("failed to get book: %w", err))
	}
	return toModel(row)
}

// Update は本の行の更新可能な列をすべて上書きします。
func (s *SQLiteStore) Update(ctx context.Context, book *model.Book) error {
	if err := s.ensureOpen("update"); err != nil {
		return err
	}
	if !book.Persisted() {
		return model.ErrBookNotPersisted
	}
	// バリデーション
	if err := book.Validate(); err != nil {
		return err
	}

	row := fromModel(book)
	result, err := s.queries.UpdateBook(ctx, db.UpdateBookParams{
		Title:        row.Title,
		Author:       row.Author,
		Pages:        row.Pages,
		Genre:        row.Genre,
		Owned:        row.Owned,
		CurrentPage:  row.CurrentPage,
		Status:       row.Status,
		DateAdded:    row.DateAdded,
		DateFinished: row.DateFinished,
		Rating:       row.Rating,
		ID:           row.ID,
	})
	if err != nil {
		return model.NewStorageError("update", fmt.Errorf("failed to update book: %w", err))
	}

	// 更新された行がなければ存在しないIDとみなす
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return model.NewStorageError("update", fmt.Errorf("failed to get rows affected: %w", err))
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", model.ErrBookNotFound, book.ID())
	}

	return nil
}

// DeleteBook は指定されたIDの本を削除します。存在しないIDの場合は何もしません。
func (s *SQLiteStore) DeleteBook(ctx context.Context, id int64) error {
	if err := s.ensureOpen("delete"); err != nil {
		return err
	}
	if err := s.queries.DeleteBook(ctx, id); err != nil {
		return model.NewStorageError("delete", fmt.Errorf("failed to delete book: %w", err))
	}
	return nil
}

// ClearAll はすべての本を削除し、削除した件数を返します。
// 削除された本のIDが再利用されることはありません。
func (s *SQLiteStore) ClearAll(ctx context.Context) (int, error) {
	if err := s.ensureOpen("clear"); err != nil {
		return 0, err
	}
	n, err := s.queries.ClearBooks(ctx)
	if err != nil {
		return 0, model.NewStorageError("clear", fmt.Errorf("failed to clear books: %w", err))
	}
	slog.InfoContext(ctx, "cleared all books", "removed", n)
	return int(n), nil
}

// ResetSchema はテーブルを削除して作り直します。
func (s *SQLiteStore) ResetSchema(ctx context.Context) error {
	if err := s.ensureOpen("reset"); err != nil {
		return err
	}
	if err := s.reset(s.conn); err != nil {
		return model.NewStorageError("reset", err)
	}
	slog.InfoContext(ctx, "schema reset")
	return nil
}

// Search は、タイトル・著者・ジャンルのいずれかに query を含む本を返します。
// 大文字小文字は Unicode の case folding で区別しません。空の query はすべての本に一致します。
func (s *SQLiteStore) Search(ctx context.Context, query string) ([]*model.Book, error) {
	books, err := s.GetAllBooks(ctx)
	if err != nil {
		return nil, err
	}
	return model.Search(books, query), nil
}

// GetStats は全件のスナップショットから統計を集計します。
func (s *SQLiteStore) GetStats(ctx context.Context) (*model.Stats, error) {
	books, err := s.GetAllBooks(ctx)
	if err != nil {
		return nil, err
	}
	return model.ComputeStats(books), nil
}

// YearlySummary は指定年に読了した本を集計します。
func (s *SQLiteStore) YearlySummary(ctx context.Context, year int) (*model.YearlySummary, error) {
	books, err := s.finishedIn(ctx, year)
	if err != nil {
		return nil, err
	}
	return model.ComputeYearlySummary(books, year), nil
}

// FinishedPerDay は指定年の日ごとに読了した本の数とページ数を集計します。
func (s *SQLiteStore) FinishedPerDay(ctx context.Context, year int) ([]model.DailyCount, error) {
	books, err := s.finishedIn(ctx, year)
	if err != nil {
		return nil, err
	}
	return model.ComputeFinishedPerDay(books, year), nil
}

func (s *SQLiteStore) finishedIn(ctx context.Context, year int) ([]*model.Book, error) {
	if err := s.ensureOpen("yearly"); err != nil {
		return nil, err
	}
	rows, err := s.queries.ListFinishedInYear(ctx, fmt.Sprintf("%04d", year))
	if err != nil {
		return nil, model.NewStorageError("yearly", fmt.Errorf("failed to list finished books: %w", err))
	}
	return toModels(rows)
}

// Close はデータベース接続を閉じます。複数回呼んでも問題ありません。
func (s *SQLiteStore) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.conn.Close(); err != nil {
		return model.NewStorageError("close", err)
	}
	return nil
}

// fromModel は本をテーブルの行に変換します。日付は YYYY-MM-DD 形式で保存します。
func fromModel(b *model.Book) db.Book {
	row := db.Book{
		ID:          b.ID(),
		Title:       b.Title,
		Author:      b.Author,
		Pages:       int64(b.Pages),
		Genre:       b.Genre,
		CurrentPage: int64(b.CurrentPage),
		Status:      b.Status.String(),
		DateAdded:   b.DateAdded.Format(model.DateLayout),
	}
	if b.Owned {
		row.Owned = 1
	}
	if b.DateFinished != nil {
		row.DateFinished = sql.NullString{String: b.DateFinished.Format(model.DateLayout), Valid: true}
	}
	if b.Rating != nil {
		row.Rating = sql.NullInt64{Int64: int64(*b.Rating), Valid: true}
	}
	return row
}

func toModel(row db.Book) (*model.Book, error) {
	dateAdded, err := time.Parse(model.DateLayout, row.DateAdded)
	if err != nil {
		return nil, decodeError(row.ID, fmt.Errorf("failed to parse date_added: %w", err))
	}

	var dateFinished *time.Time
	if row.DateFinished.Valid {
		t, err := time.Parse(model.DateLayout, row.DateFinished.String)
		if err != nil {
			return nil, decodeError(row.ID, fmt.Errorf("failed to parse date_finished: %w", err))
		}
		dateFinished = &t
	}

	var rating *int
	if row.Rating.Valid {
		r := int(row.Rating.Int64)
		rating = &r
	}

	book, err := model.LoadBook(
		row.ID,
		row.Title,
		row.Author,
		int(row.Pages),
		row.Genre,
		row.Owned != 0,
		int(row.CurrentPage),
		model.Status(row.Status),
		dateAdded,
		dateFinished,
		rating,
	)
	if err != nil {
		return nil, decodeError(row.ID, err)
	}
	return book, nil
}

func toModels(rows []db.Book) ([]*model.Book, error) {
	books := make([]*model.Book, 0, len(rows))
	for _, row := range rows {
		book, err := toModel(row)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

func decodeError(id int64, err error) error {
	slog.Warn("failed to decode book row", "id", id, "error", err)
	return model.NewStorageError("decode", fmt.Errorf("book %d: %w", id, err))
}
