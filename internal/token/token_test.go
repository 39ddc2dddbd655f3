package token

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New("test_secret")

	tok, err := j.Generate(uuid.New(), time.Now().Add(time.Hour))
	assert.NoError(t, err)
	assert.NotEmpty(t, tok)

	assert.NoError(t, j.Validate(tok))
}

func TestJWT_UniquePerSession(t *testing.T) {
	j := New("test_secret")
	exp := time.Now().Add(time.Hour)

	first, err := j.Generate(uuid.New(), exp)
	assert.NoError(t, err)
	second, err := j.Generate(uuid.New(), exp)
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	j := New("test_secret")

	tok, err := j.Generate(uuid.New(), time.Now().Add(time.Hour))
	assert.NoError(t, err)

	other := New("another_secret")
	assert.Error(t, other.Validate(tok))
}

func TestJWT_Validate_Garbage(t *testing.T) {
	j := New("test_secret")
	assert.Error(t, j.Validate("not-a-token"))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("test_secret")
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc123", want: "abc123"},
		{name: "lowercase scheme", header: "bearer abc123", want: "abc123"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc123", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			got, err := j.GetTokenFromRequest(ctx, r)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
