package opendota

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerWon(t *testing.T) {
	testCases := []struct {
		name       string
		playerSlot int
		radiantWin bool
		expected   bool
	}{
		{"radiant slot 0, radiant wins", 0, true, true},
		{"radiant slot 0, radiant loses", 0, false, false},
		{"radiant slot 127, radiant wins", 127, true, true},
		{"radiant slot 127, radiant loses", 127, false, false},
		{"dire slot 128, radiant wins", 128, true, false},
		{"dire slot 128, radiant loses", 128, false, true},
		{"dire slot 132, radiant loses", 132, false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := MatchSummary{PlayerSlot: tc.playerSlot, RadiantWin: tc.radiantWin}
			assert.Equal(t, tc.expected, m.PlayerWon())
		})
	}
}

func TestHeroName(t *testing.T) {
	assert.Equal(t, "Anti-Mage", HeroName(1))
	assert.Equal(t, "Largo", HeroName(155))
	assert.Equal(t, "Unknown Hero (9999)", HeroName(9999))
	assert.Equal(t, "Unknown Hero (0)", HeroName(0))

	m := MatchSummary{HeroID: 14}
	assert.Equal(t, "Pudge", m.HeroName())
}

func TestDurationString(t *testing.T) {
	testCases := []struct {
		duration int
		expected string
	}{
		{1800, "30m 0s"},
		{2537, "42m 17s"},
		{59, "0m 59s"},
		{3661, "61m 1s"},
		{0, "0m 0s"},
	}

	for _, tc := range testCases {
		m := MatchSummary{Duration: tc.duration}
		assert.Equal(t, tc.expected, m.DurationString())
	}
}

func TestStartTimeUTC(t *testing.T) {
	m := MatchSummary{StartTime: 1700000000}
	got := m.StartTimeUTC()
	assert.Equal(t, "UTC", got.Location().String())
	assert.Equal(t, int64(1700000000), got.Unix())
}
