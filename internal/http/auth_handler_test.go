package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nisuz/decorhavenstore/internal/auth"
)

func newTestAuthService() *auth.Service {
	return auth.NewService("test-secret")
}

func registerBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(RegisterRequestDTO{
		Name:            "Asha Rai",
		Email:           "asha@example.com",
		Phone:           "9800000001",
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
	})
	require.NoError(t, err)
	return body
}

func TestRegister_Success(t *testing.T) {
	handler := NewAuthHandler(newTestAuthService())

	recorder := httptest.NewRecorder()
	handler.Register(recorder, httptest.NewRequest("POST", "/auth/register", bytes.NewReader(registerBody(t))))

	require.Equal(t, http.StatusCreated, recorder.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	handler := NewAuthHandler(newTestAuthService())

	recorder := httptest.NewRecorder()
	handler.Register(recorder, httptest.NewRequest("POST", "/auth/register", bytes.NewReader(registerBody(t))))
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	handler.Register(recorder, httptest.NewRequest("POST", "/auth/register", bytes.NewReader(registerBody(t))))
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	handler := NewAuthHandler(newTestAuthService())

	body, _ := json.Marshal(RegisterRequestDTO{
		Name:            "Asha Rai",
		Email:           "asha@example.com",
		Password:        "one",
		ConfirmPassword: "two",
	})
	recorder := httptest.NewRecorder()
	handler.Register(recorder, httptest.NewRequest("POST", "/auth/register", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLogin_RegisteredUser(t *testing.T) {
	service := newTestAuthService()
	handler := NewAuthHandler(service)

	recorder := httptest.NewRecorder()
	handler.Register(recorder, httptest.NewRequest("POST", "/auth/register", bytes.NewReader(registerBody(t))))
	require.Equal(t, http.StatusCreated, recorder.Code)

	body, _ := json.Marshal(LoginRequestDTO{Email: "asha@example.com", Password: "s3cret-pass"})
	recorder = httptest.NewRecorder()
	handler.Login(recorder, httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response LoginResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "asha@example.com", response.User.Email)

	userID, err := service.UserID(response.Token)
	require.NoError(t, err)
	assert.Equal(t, response.User.ID, userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	handler := NewAuthHandler(newTestAuthService())

	recorder := httptest.NewRecorder()
	handler.Register(recorder, httptest.NewRequest("POST", "/auth/register", bytes.NewReader(registerBody(t))))
	require.Equal(t, http.StatusCreated, recorder.Code)

	body, _ := json.Marshal(LoginRequestDTO{Email: "asha@example.com", Password: "wrong"})
	recorder = httptest.NewRecorder()
	handler.Login(recorder, httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLogin_InvalidEmail(t *testing.T) {
	handler := NewAuthHandler(newTestAuthService())

	body, _ := json.Marshal(LoginRequestDTO{Email: "not-an-email", Password: "whatever"})
	recorder := httptest.NewRecorder()
	handler.Login(recorder, httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
