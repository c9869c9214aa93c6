package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{ErrPlaceNotFound, http.StatusNotFound},
		{fmt.Errorf("lookup: %w", ErrPlaceNotFound), http.StatusNotFound},
		{ErrUnknownLanguage, http.StatusBadRequest},
		{&ValidationError{Field: "place", Message: "place is required"}, http.StatusBadRequest},
		{&EmptyResultError{Resource: "forecast entries"}, http.StatusNotFound},
		{&RequestError{StatusCode: 429, StatusText: "Too Many Requests"}, http.StatusBadGateway},
		{&NetworkError{Err: errors.New("dial tcp: refused")}, http.StatusBadGateway},
		{ErrDatabaseError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, msg := StatusForError(tc.err)
		assert.Equal(t, tc.code, code, tc.err.Error())
		assert.NotEmpty(t, msg)
	}
}

func TestNetworkErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := &NetworkError{Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "network error: connection reset", err.Error())
}

func TestOffsetDaysUsesBangkokCalendar(t *testing.T) {
	// 20:00 UTC is already the next day in Bangkok
	now := time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-10-17", FormatDateTH(OffsetDays(now, 0)))
	assert.Equal(t, "2026-10-20", FormatDateTH(OffsetDays(now, 3)))
	assert.Equal(t, "2026-10-15", FormatDateTH(OffsetDays(now, -2)))
	assert.Equal(t, "", FormatDateTH(time.Time{}))
}

func TestFromUnixSecondsTH(t *testing.T) {
	assert.True(t, FromUnixSecondsTH(0).IsZero())
	assert.Equal(t, "Thu 16 Oct 16:00", FormatDisplayTH(FromUnixSecondsTH(1760605200)))
}
