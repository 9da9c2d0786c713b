package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youruser/deckapp/internal/cards"
)

func TestValidateOversizedExtra(t *testing.T) {
	d := New(fixtureRepo())
	fill(t, d, cards.ZoneMain, seq(1, 59)...)
	fill(t, d, cards.ZoneExtra, seq(201, 220)...)

	got := d.Validate()
	require.Len(t, got, 1)
	assert.Equal(t, Violation{Kind: ExtraTooLarge, Zone: cards.ZoneExtra, Limit: ExtraMax, Count: 20}, got[0])

	text, err := d.Export()
	assert.Empty(t, text)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, got, verr.Violations)
	assert.Contains(t, err.Error(), "extra deck has more than 15 cards (20)")
}

func TestValidateReportsEveryViolation(t *testing.T) {
	d := New(fixtureRepo())
	fill(t, d, cards.ZoneMain, seq(1, 10)...)
	fill(t, d, cards.ZoneExtra, seq(201, 216)...)

	got := d.Validate()
	require.Len(t, got, 2)
	assert.Equal(t, MainTooSmall, got[0].Kind)
	assert.Equal(t, ExtraTooLarge, got[1].Kind)
}

func TestValidateOversizedMain(t *testing.T) {
	d := New(fixtureRepo())
	fill(t, d, cards.ZoneMain, seq(1, 61)...)
	got := d.Validate()
	require.Len(t, got, 1)
	assert.Equal(t, MainTooLarge, got[0].Kind)
	assert.Equal(t, 61, got[0].Count)
}

func TestValidateBoundaries(t *testing.T) {
	d := New(fixtureRepo())
	fill(t, d, cards.ZoneMain, seq(1, 30)...)
	assert.Empty(t, d.Validate(), "30 main, empty extra")

	fill(t, d, cards.ZoneMain, seq(31, 60)...)
	fill(t, d, cards.ZoneExtra, seq(201, 215)...)
	assert.Empty(t, d.Validate(), "60 main, 15 extra")
}

func TestStatus(t *testing.T) {
	tests := []struct {
		kind cards.Zone
		n    int
		want LimitStatus
	}{
		{cards.ZoneMain, 0, StatusUnder},
		{cards.ZoneMain, 29, StatusUnder},
		{cards.ZoneMain, 30, StatusOK},
		{cards.ZoneMain, 60, StatusOK},
		{cards.ZoneMain, 61, StatusOver},
		{cards.ZoneExtra, 0, StatusOK},
		{cards.ZoneExtra, 15, StatusOK},
		{cards.ZoneExtra, 16, StatusOver},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Status(tt.kind, tt.n), "%s %d", tt.kind, tt.n)
	}
}
