package services

import (
	"testing"

	"github.com/healthsync/api/httperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_admitBooking(t *testing.T) {
	cases := []struct {
		name     string
		active   int64
		admitted bool
	}{
		{name: "empty slot admits", active: 0, admitted: true},
		{name: "one spot left admits", active: 4, admitted: true},
		{name: "full slot rejects", active: 5, admitted: false},
		{name: "overbooked slot rejects", active: 6, admitted: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := admitBooking(c.active)
			if c.admitted {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var httpErr *httperr.Error
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, 400, httpErr.Status)
			assert.Contains(t, httpErr.Message, "fully booked")
			assert.Contains(t, httpErr.Message, "5")
		})
	}
}
