package api

import (
	"net/http"
	"testing"

	"fdict/dictation-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesUser(t *testing.T) {
	a, _ := newTestAPI(t)

	w := doRequest(a, jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    "new@example.com",
		"password": "Password1",
	}))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := dataField(t, w)
	user, ok := data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "new@example.com", user["email"])
	assert.NotEmpty(t, user["id"])
	assert.NotEmpty(t, user["createdAt"])

	var stored model.User
	require.NoError(t, a.DB.Where("email = ?", "new@example.com").First(&stored).Error)
	assert.NotEqual(t, "Password1", stored.PasswordHash)
	assert.Contains(t, stored.PasswordHash, "$argon2id$")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a, _ := newTestAPI(t)

	first := doRequest(a, jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    "dup@example.com",
		"password": "Password1",
	}))
	require.Equal(t, http.StatusCreated, first.Code)

	var before model.User
	require.NoError(t, a.DB.Where("email = ?", "dup@example.com").First(&before).Error)

	second := doRequest(a, jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    "dup@example.com",
		"password": "Different2",
	}))

	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, "AUTH_EMAIL_EXISTS", errorCode(t, second))

	// The existing row must be untouched
	var after model.User
	require.NoError(t, a.DB.Where("email = ?", "dup@example.com").First(&after).Error)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		field    string
		contains string
	}{
		{"missing email", "", "Password1", "email", "required"},
		{"bad email", "not-an-email", "Password1", "email", "Invalid email"},
		{"missing password", "a@example.com", "", "password", "required"},
		{"too short", "a@example.com", "Pw1", "password", "8 characters"},
		{"no uppercase", "a@example.com", "password1", "password", "uppercase"},
		{"no number", "a@example.com", "Passwords", "password", "number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestAPI(t)

			w := doRequest(a, jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
				"email":    tt.email,
				"password": tt.password,
			}))

			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, "AUTH_INVALID_INPUT", errorCode(t, w))

			body := decodeBody(t, w)
			details := body["error"].(map[string]any)["details"].(map[string]any)
			assert.Contains(t, details[tt.field], tt.contains)

			var count int64
			require.NoError(t, a.DB.Model(&model.User{}).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}
