package validator

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nihom/shared/failure"
)

type signupPayload struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

func (s *signupPayload) FromForm(r *http.Request) error {
	s.Name = r.FormValue("name")
	s.Email = r.FormValue("email")

	return nil
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(&signupPayload{Name: "a", Email: "a@example.com"})
	assert.NoError(t, err)

	err = ValidateStruct(&signupPayload{Email: "a@example.com"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "required")

	err = ValidateStruct(&signupPayload{Name: "a", Email: "not-an-email"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestValidateForm(t *testing.T) {
	values := url.Values{"name": {"a"}, "email": {"a@example.com"}}
	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	payload := signupPayload{}
	require.NoError(t, ValidateForm(request, &payload))
	assert.Equal(t, "a", payload.Name)
	assert.Equal(t, "a@example.com", payload.Email)
}

func TestValidateFormMissingRequiredField(t *testing.T) {
	values := url.Values{"email": {"a@example.com"}}
	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	payload := signupPayload{}
	err := ValidateForm(request, &payload)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, ValidateVar("a@example.com", "email"))
	assert.Error(t, ValidateVar("nope", "email"))
}
