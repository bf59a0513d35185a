package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidInput, "Username cannot be empty")
	want := "INVALID_INPUT: Username cannot be empty"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorWithCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "fetch user")

	if got := err.Error(); got != "NETWORK_ERROR: fetch user: connection refused" {
		t.Errorf("Error() = %q", got)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeUserNotFound, "no such user"), ErrCodeUserNotFound, true},
		{"different code", New(ErrCodeNetwork, "timeout"), ErrCodeUserNotFound, false},
		{"wrapped in fmt", fmt.Errorf("context: %w", New(ErrCodeDecoding, "bad payload")), ErrCodeDecoding, true},
		{"status error", &StatusError{StatusCode: 503}, ErrCodeServer, true},
		{"plain error", stderrors.New("plain"), ErrCodeNetwork, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidInput, "bad")); got != ErrCodeInvalidInput {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidInput)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "Search query cannot be empty")
	if got := UserMessage(err); got != "Search query cannot be empty" {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := stderrors.New("something broke")
	if got := UserMessage(plain); got != "something broke" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestStatusError(t *testing.T) {
	err := &StatusError{StatusCode: 500}

	if got := StatusOf(err); got != 500 {
		t.Errorf("StatusOf() = %d, want 500", got)
	}
	if got := StatusOf(fmt.Errorf("wrapped: %w", err)); got != 500 {
		t.Errorf("StatusOf(wrapped) = %d, want 500", got)
	}
	if got := StatusOf(New(ErrCodeNetwork, "timeout")); got != 0 {
		t.Errorf("StatusOf(non-status) = %d, want 0", got)
	}
}
