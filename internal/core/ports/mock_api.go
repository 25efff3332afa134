package ports

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
)

// Envelope codes. They live inside the response body and are independent
// of the transport status.
const (
	CodeSuccess = 200
	CodeFailure = 201
)

// MockRequest describes a request addressed to the fake backend.
type MockRequest struct {
	URL    string
	Method string
	Body   json.RawMessage
	Header http.Header
}

// Envelope is the wire form of a fake backend response.
type Envelope struct {
	Code int `json:"code"`
	Data any `json:"data"`
}

// MessagePayload is the data of every failure envelope.
type MessagePayload struct {
	Message string `json:"message"`
}

// LoginPayload is the data of a successful login.
type LoginPayload struct {
	Token string `json:"token"`
}

// Result is either a success carrying a value or a failure carrying a
// message. The zero Result is a failure with an empty message.
type Result[T any] struct {
	value   T
	message string
	ok      bool
}

// Success wraps v as a successful result.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Failure builds a failed result carrying msg.
func Failure[T any](msg string) Result[T] {
	return Result[T]{message: msg}
}

// OK reports whether r is a success.
func (r Result[T]) OK() bool { return r.ok }

// Value returns the payload and whether r is a success.
func (r Result[T]) Value() (T, bool) { return r.value, r.ok }

// Message returns the failure message, empty on success.
func (r Result[T]) Message() string { return r.message }

// Envelope renders r in the {code, data} wire form.
func (r Result[T]) Envelope() Envelope {
	if r.ok {
		return Envelope{Code: CodeSuccess, Data: r.value}
	}
	return Envelope{Code: CodeFailure, Data: MessagePayload{Message: r.message}}
}

// MockAPI is the fake backend standing in for the real auth service.
type MockAPI interface {
	Dispatch(ctx context.Context, req MockRequest) (Envelope, error)
	Authenticate(ctx context.Context, username, password string) Result[LoginPayload]
	Profile(ctx context.Context, token string) Result[domain.Account]
}
