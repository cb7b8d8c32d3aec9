// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"errors"
	"fmt"
)

// センチネルエラー - 本が見つからない場合、保存状態が操作と合わない場合
var (
	ErrBookNotFound         = errors.New("book not found")
	ErrBookNotPersisted     = errors.New("book has not been persisted")
	ErrBookAlreadyPersisted = errors.New("book is already persisted")
)

// ValidationError はバリデーションエラーを表す型
// ストレージにはアクセスせず、エンティティ単体で判定されます。
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// NewValidationError はValidationErrorを生成するヘルパー関数
func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// StorageError はストレージ層の失敗（制約違反、I/Oエラー、スキーマの欠落）を包む型
// 失敗した操作だけが影響を受け、接続は引き続き使用できます。
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError は err を op の StorageError として包むヘルパー関数。nil はそのまま返します。
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsValidationError は err が ValidationError か、それを包んでいるかを判定します。
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStorageError は err が StorageError か、それを包んでいるかを判定します。
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
