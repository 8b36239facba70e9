package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSkillLevel(t *testing.T) {
	tests := []struct {
		input string
		want  SkillLevel
	}{
		{"beginner", LevelBeginner},
		{"Intermediate", LevelIntermediate},
		{"  ADVANCED  ", LevelAdvanced},
		{"expert", LevelUnknown},
		{"", LevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSkillLevel(tt.input))
		})
	}
}

func TestCreateUserRequestValidate(t *testing.T) {
	valid := CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "secret-password"}
	assert.NoError(t, valid.Validate())

	invalid := CreateUserRequest{Name: "", Email: "not-an-email", Password: "short"}
	assert.Error(t, invalid.Validate())
}

func TestLoginRequestValidate(t *testing.T) {
	valid := LoginRequest{Email: "ada@example.com", Password: "anything"}
	assert.NoError(t, valid.Validate())

	invalid := LoginRequest{Email: "ada@example.com"}
	assert.Error(t, invalid.Validate())
}
