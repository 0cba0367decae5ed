package apperrors

import (
	"errors"
	"net/http"
)

// Kind エラーの分類
type Kind int

const (
	// Validation 入力値の不足・不正・重複
	Validation Kind = iota
	// Authorization 操作ユーザーとリソース所有者の不一致
	Authorization
	// NotFound 参照先のエンティティが存在しない
	NotFound
	// Internal 予期しない内部エラー
	Internal
)

// Error クライアント向けメッセージを持つアプリケーションエラー
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error エラーメッセージを返す
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal server error"
}

// Unwrap 内包するエラーを返す
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidation バリデーションエラーを作成
func NewValidation(message string) error {
	return &Error{Kind: Validation, Message: message}
}

// NewAuthorization 認可エラーを作成
func NewAuthorization(message string) error {
	return &Error{Kind: Authorization, Message: message}
}

// NewNotFound 未検出エラーを作成
func NewNotFound(message string) error {
	return &Error{Kind: NotFound, Message: message}
}

// WrapInternal 予期しないエラーを内部エラーとしてラップ
func WrapInternal(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: Internal, Err: err}
}

// StatusCode エラーに対応するHTTPステータスコードを返す
// バリデーション・認可は400、未検出は404、それ以外は500
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case Validation, Authorization:
			return http.StatusBadRequest
		case NotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}

// ClientMessage クライアントに返すメッセージを返す
// 内部エラーの詳細は漏らさない
func ClientMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Message
	}
	return "Internal server error"
}
