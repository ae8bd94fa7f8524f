package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"nihom/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidIDParam",
			failure: failure.InvalidIDParam,
			code:    http.StatusBadRequest,
			message: "invalid id parameter",
		},
		{
			name:    "InvalidCredentials",
			failure: failure.InvalidCredentials,
			code:    http.StatusUnauthorized,
			message: "invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"BadRequest", failure.BadRequest(errors.New("bad input")), http.StatusBadRequest, "bad input"},
		{"BadRequestFromString", failure.BadRequestFromString("missing field"), http.StatusBadRequest, "missing field"},
		{"Unauthorized", failure.Unauthorized("invalid credentials"), http.StatusUnauthorized, "invalid credentials"},
		{"InternalError", failure.InternalError(errors.New("disk full")), http.StatusInternalServerError, "disk full"},
		{"NotFound", failure.NotFound("hero content not found"), http.StatusNotFound, "hero content not found"},
		{"Conflict", failure.Conflict("slug already exists"), http.StatusConflict, "slug already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("expected an error, got nil")
			}
			if failure.GetCode(tt.err) != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, failure.GetCode(tt.err))
			}
			if tt.err.Error() != tt.msg {
				t.Errorf("expected message %q, got %q", tt.msg, tt.err.Error())
			}
		})
	}
}

func TestNilErrorConstructors(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode_WrappedError(t *testing.T) {
	inner := failure.NotFound("course not found")
	wrapped := fmt.Errorf("fetching course: %w", inner)

	if failure.GetCode(wrapped) != http.StatusNotFound {
		t.Errorf("expected wrapped failure to keep its code, got %d", failure.GetCode(wrapped))
	}

	if !failure.IsNotFound(wrapped) {
		t.Error("expected IsNotFound to be true for wrapped not-found error")
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if code := failure.GetCode(errors.New("boom")); code != http.StatusInternalServerError {
		t.Errorf("expected plain errors to map to 500, got %d", code)
	}
}
