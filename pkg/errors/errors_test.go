package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidLockOffset, "malformed offset: %s", "12banana")

	if err.Code != ErrCodeInvalidLockOffset {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidLockOffset)
	}

	if err.Message != "malformed offset: 12banana" {
		t.Errorf("Message = %v, want %v", err.Message, "malformed offset: 12banana")
	}

	expected := "INVALID_LOCK_OFFSET: malformed offset: 12banana"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidOption, cause, "loading preset")

	if err.Code != ErrCodeInvalidOption {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidOption)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeConflictingOptions, "test"),
			code:     ErrCodeConflictingOptions,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeConflictingOptions, "test"),
			code:     ErrCodeNoActiveSession,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInternal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidAxis, "bad axis")); got != ErrCodeInvalidAxis {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidAxis)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidAxis, "bad axis")); got != "bad axis" {
		t.Errorf("UserMessage() = %v, want %v", got, "bad axis")
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %v, want %v", got, "plain")
	}
}
