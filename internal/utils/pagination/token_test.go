package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := Cursor{
		Date:      time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC),
		ID:        "6f1c7f0e-5a0b-4a55-8f65-3b1f5a0c9d11",
	}

	token := EncodeToken(cursor)
	require.NotEmpty(t, token)
	assert.NotContains(t, token, "=", "token is used in query strings and must not need escaping")

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, cursor.Date.Equal(decoded.Date))
	assert.True(t, cursor.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, cursor.ID, decoded.ID)
}

func TestEncodeToken_NormalisesToUTC(t *testing.T) {
	lagos := time.FixedZone("WAT", 3600)
	created := time.Date(2025, 1, 2, 10, 0, 0, 0, lagos)

	decoded, err := DecodeToken(EncodeToken(Cursor{Date: created, CreatedAt: created, ID: "x"}))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, decoded.CreatedAt.Location())
	assert.True(t, created.Equal(decoded.CreatedAt))
}

func TestDecodeToken_Invalid(t *testing.T) {
	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "!!!"},
		{name: "too few fields", token: enc("2025-01-01T00:00:00Z|2025-01-01T00:00:00Z")},
		{name: "empty id", token: enc("2025-01-01T00:00:00Z|2025-01-01T00:00:00Z|")},
		{name: "bad date", token: enc("yesterday|2025-01-01T00:00:00Z|id")},
		{name: "bad created_at", token: enc("2025-01-01T00:00:00Z|later|id")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeToken(tt.token)
			assert.Error(t, err)
		})
	}
}
