package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnown(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, Known(s), "expected %s to be known", s)
	}
	assert.False(t, Known("PAID"))
	assert.False(t, Known(""))
}

func TestProgressPercent(t *testing.T) {
	cases := []struct {
		status Status
		want   int
	}{
		{StatusPending, 25},
		{StatusProcessing, 50},
		{StatusShipped, 75},
		{StatusDelivered, 100},
		{StatusCancelled, 0},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, ProgressPercent(tc.status))
		})
	}
}
