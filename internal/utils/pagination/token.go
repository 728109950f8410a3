// Package pagination encodes opaque keyset cursors for list endpoints.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const (
	timeFormat = time.RFC3339Nano
	separator  = "|"
)

// Cursor is the sort key of the last row of a page. Rows are ordered by
// (Date, CreatedAt, ID) descending, so ID breaks ties between rows created in the same instant.
type Cursor struct {
	Date      time.Time
	CreatedAt time.Time
	ID        string
}

// EncodeToken turns a cursor into a URL-safe token.
func EncodeToken(c Cursor) string {
	raw := strings.Join([]string{c.Date.UTC().Format(timeFormat), c.CreatedAt.UTC().Format(timeFormat), c.ID}, separator)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (Cursor, error) {
	var c Cursor
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return c, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decoded), separator, 3)
	if len(parts) != 3 || parts[2] == "" {
		return c, fmt.Errorf("invalid pagination token format (expected 3 fields)")
	}
	if c.Date, err = time.Parse(timeFormat, parts[0]); err != nil {
		return c, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	if c.CreatedAt, err = time.Parse(timeFormat, parts[1]); err != nil {
		return c, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	c.ID = parts[2]
	return c, nil
}
