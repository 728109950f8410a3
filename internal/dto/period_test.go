package dto_test

import (
	"testing"
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/apperrors"
	"github.com/SscSPs/sme_tax_estimator/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	now := time.Date(2025, time.June, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name     string
		from, to string
		wantFrom string
		wantTo   string
		wantErr  bool
	}{
		{name: "defaults to year to date", wantFrom: "2025-01-01", wantTo: "2025-06-15"},
		{name: "explicit range", from: "2024-01-01", to: "2024-12-31", wantFrom: "2024-01-01", wantTo: "2024-12-31"},
		{name: "from defaults to start of to year", to: "2023-05-10", wantFrom: "2023-01-01", wantTo: "2023-05-10"},
		{name: "single day", from: "2025-03-01", to: "2025-03-01", wantFrom: "2025-03-01", wantTo: "2025-03-01"},
		{name: "inverted", from: "2025-03-02", to: "2025-03-01", wantErr: true},
		{name: "bad from", from: "01/03/2025", wantErr: true},
		{name: "bad to", to: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := dto.ParsePeriod(tt.from, tt.to, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, p.From.Format(dto.DateLayout))
			assert.Equal(t, tt.wantTo, p.To.Format(dto.DateLayout))
		})
	}
}
