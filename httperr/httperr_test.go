package httperr

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err      *Error
		expected int
	}{
		{InvalidArgument("bad input"), http.StatusBadRequest},
		{NotFound("missing"), http.StatusNotFound},
		{Forbidden("nope"), http.StatusForbidden},
		{Conflict("duplicate"), http.StatusConflict},
		{Internal("boom"), http.StatusInternalServerError},
		{CapacityExceeded(5), http.StatusBadRequest},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, c.err.Status)
		assert.NotEmpty(t, c.err.Error())
	}
}

func TestCapacityExceeded_statesTheLimit(t *testing.T) {
	err := CapacityExceeded(5)
	assert.Contains(t, err.Error(), "5")
	assert.Equal(t, "This time slot is fully booked. Doctor can only take 5 appointments per time slot.", err.Message)
}
