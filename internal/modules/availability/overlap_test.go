package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps_Symmetry(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"disjoint", date(2025, 9, 1), date(2025, 9, 3), date(2025, 9, 10), date(2025, 9, 12), false},
		{"contained", date(2025, 9, 1), date(2025, 9, 10), date(2025, 9, 3), date(2025, 9, 5), true},
		{"partial", date(2025, 9, 1), date(2025, 9, 5), date(2025, 9, 4), date(2025, 9, 8), true},
		{"touching", date(2025, 9, 1), date(2025, 9, 5), date(2025, 9, 5), date(2025, 9, 8), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd), "must be symmetric")
		})
	}
}

func TestOverlaps_SelfOverlap(t *testing.T) {
	start := date(2025, 9, 1)
	end := date(2025, 9, 3)
	assert.True(t, Overlaps(start, end, start, end))
}

func TestOverlaps_TouchingIsNotOverlapping(t *testing.T) {
	// A checkout on the 5th and a check-in on the 5th are back-to-back stays.
	assert.False(t, Overlaps(date(2025, 9, 1), date(2025, 9, 5), date(2025, 9, 5), date(2025, 9, 9)))
}

func TestBeforeCutoff(t *testing.T) {
	cutoff := date(2025, 9, 5)

	assert.True(t, BeforeCutoff(date(2025, 9, 4), cutoff))
	assert.True(t, BeforeCutoff(date(2025, 9, 5), cutoff), "cutoff blocks the start date itself")
	assert.False(t, BeforeCutoff(date(2025, 9, 6), cutoff))
}
