package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Passw0rd!", true},
		{"Abcdef1-", true},
		{"Abc1!", false},
		{"password1!", false},
		{"PASSWORD1!", false},
		{"Password!!", false},
		{"Password12", false},
		{"Pass word1_", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrongPassword(tt.password))
		})
	}
}

func TestValidateRequest_Username(t *testing.T) {
	base := RegisterUserRequest{EmailID: "a@b.co", FullName: "A", Password: "Passw0rd!"}

	tests := []struct {
		name     string
		username string
		wantMsg  string
	}{
		{name: "ok", username: "alice42"},
		{name: "too short", username: "al", wantMsg: "Username should be from 3 to 30 characters."},
		{name: "too long", username: "a123456789012345678901234567890", wantMsg: "Username should be from 3 to 30 characters."},
		{name: "special", username: "al_ice", wantMsg: "Username can only contain alphabets and numbers."},
		{name: "missing", username: "", wantMsg: "Username is required!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			req.UserName = tt.username
			err := validateRequest(req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantMsg)
			assert.ErrorContains(t, err, "UM4001E")
		})
	}
}

func TestValidateRequest_UpdateAllowsPartial(t *testing.T) {
	assert.NoError(t, validateRequest(UpdateUserRequest{ID: "u-1"}))
	assert.NoError(t, validateRequest(UpdateUserRequest{ID: "u-1", FullName: "New"}))
	assert.ErrorContains(t, validateRequest(UpdateUserRequest{ID: "u-1", EmailID: "bad"}), "Email id is invalid!")
}
