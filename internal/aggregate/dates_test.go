package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPastMonthStart(t *testing.T) {
	tests := []struct {
		ref        time.Time
		monthsBack int
		want       time.Time
	}{
		{time.Date(1999, 2, 1, 0, 0, 0, 0, time.UTC), 1, time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(1999, 2, 1, 0, 0, 0, 0, time.UTC), 2, time.Date(1998, 12, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(1999, 2, 1, 0, 0, 0, 0, time.UTC), 3, time.Date(1998, 11, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(1999, 2, 28, 0, 0, 0, 0, time.UTC), 3, time.Date(1998, 11, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(1999, 2, 28, 0, 0, 0, 0, time.UTC), 15, time.Date(1997, 11, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got := PastMonthStart(tt.monthsBack, tt.ref)
		assert.True(t, tt.want.Equal(got), "%d months back from %v: got %v", tt.monthsBack, tt.ref, got)
	}
}
