package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

func TestAuthHandler_Register(t *testing.T) {
	ts := newTestServer(t)

	token, user := ts.register(t, "Ada@Example.com")
	assert.NotEmpty(t, token)
	require.NotNil(t, user)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada Lovelace", user.Name)

	t.Run("the hash is stored, not the password", func(t *testing.T) {
		stored := ts.store.users[user.ID]
		require.NotNil(t, stored)
		assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash)
		assert.NotEmpty(t, stored.PasswordHash)
	})

	t.Run("the response never carries the hash", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/register", "", types.RegisterRequest{
			Name: "Grace", Email: "grace@example.com", Password: "correct-horse-battery",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), "$2a$")
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/register", "", types.RegisterRequest{
			Name: "Ada", Email: " ada@example.com ", Password: "another-password",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_Register_Invalid(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		body  any
		field string
	}{
		{"missing name", types.RegisterRequest{Email: "a@b.com", Password: "long-enough"}, "Name"},
		{"bad email", types.RegisterRequest{Name: "A", Email: "nope", Password: "long-enough"}, "Email"},
		{"short password", types.RegisterRequest{Name: "A", Email: "a@b.com", Password: "short"}, "Password"},
		{"malformed JSON", "{", "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, http.MethodPost, "/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decodeBody[map[string]string](t, w)["error"], tt.field)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := newTestServer(t)
	_, user := ts.register(t, "ada@example.com")

	w := ts.do(t, http.MethodPost, "/auth/login", "", types.LoginRequest{Email: "ADA@example.com", Password: "correct-horse-battery"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[types.AuthResponse](t, w)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	// Unknown email and wrong password are indistinguishable.
	wrong := ts.do(t, http.MethodPost, "/auth/login", "", types.LoginRequest{Email: "ada@example.com", Password: "wrong-password"})
	unknown := ts.do(t, http.MethodPost, "/auth/login", "", types.LoginRequest{Email: "who@example.com", Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}

func TestAuthHandler_Me(t *testing.T) {
	ts := newTestServer(t)
	token, user := ts.register(t, "ada@example.com")

	w := ts.do(t, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.ID, decodeBody[types.User](t, w).ID)

	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/auth/me", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/auth/me", "garbage", nil).Code)

	// A valid token for an account that no longer exists.
	delete(ts.store.users, user.ID)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/auth/me", token, nil).Code)
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "ada@example.com")

	w := ts.do(t, http.MethodPut, "/auth/password", token, types.UpdatePasswordRequest{
		CurrentPassword: "not-my-password", NewPassword: "brand-new-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodPut, "/auth/password", token, types.UpdatePasswordRequest{
		CurrentPassword: "correct-horse-battery", NewPassword: "correct-horse-battery",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "the new password must differ")

	w = ts.do(t, http.MethodPut, "/auth/password", token, types.UpdatePasswordRequest{
		CurrentPassword: "correct-horse-battery", NewPassword: "brand-new-password",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	login := func(password string) int {
		return ts.do(t, http.MethodPost, "/auth/login", "", types.LoginRequest{Email: "ada@example.com", Password: password}).Code
	}
	assert.Equal(t, http.StatusOK, login("brand-new-password"))
	assert.Equal(t, http.StatusUnauthorized, login("correct-horse-battery"))
}
