package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestError(t *testing.T) {
	cause := errors.New("no such file")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeUnknownTask, "task %q depends on %q", "b", "ghost"), `UNKNOWN_TASK: task "b" depends on "ghost"`},
		{"with cause", Wrap(ErrCodeFileNotFound, cause, "open %s", "plan.yaml"), "FILE_NOT_FOUND: open plan.yaml: no such file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	err := Wrap(ErrCodeFileNotFound, cause, "open chart")
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if got := errors.Unwrap(err); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"coded", New(ErrCodeUnknownTask, "ghost"), ErrCodeUnknownTask},
		{"outer code wins", Wrap(ErrCodeFileNotFound, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeFileNotFound},
		{"behind fmt.Errorf", fmt.Errorf("plan.yaml: %w", New(ErrCodeInvalidChart, "dup")), ErrCodeInvalidChart},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
			if tt.want != "" && !Is(tt.err, tt.want) {
				t.Errorf("Is(%v) = false, want true", tt.want)
			}
			if Is(tt.err, ErrCodeInternal) {
				t.Error("Is(INTERNAL_ERROR) = true, want false")
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid chart", New(ErrCodeInvalidChart, "bad"), http.StatusBadRequest},
		{"unknown task", New(ErrCodeUnknownTask, "missing"), http.StatusBadRequest},
		{"wrapped format", fmt.Errorf("render: %w", New(ErrCodeInvalidFormat, "gif")), http.StatusBadRequest},
		{"file not found", New(ErrCodeFileNotFound, "gone"), http.StatusNotFound},
		{"too large", New(ErrCodeTooLarge, "body"), http.StatusRequestEntityTooLarge},
		{"unsupported", New(ErrCodeUnsupported, "pdf"), http.StatusNotImplemented},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateTaskID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple", "design", false},
		{"with spaces and dashes", "phase 1 - build", false},
		{"empty", "", true},
		{"control character", "task\n1", true},
		{"too long", strings.Repeat("x", 257), true},
		{"max length", strings.Repeat("x", 256), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTaskID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTaskID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidChart) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidChart)
			}
		})
	}
}
