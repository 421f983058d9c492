package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusContacted, StatusEnrolled, StatusDeclined} {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus("PENDING"))
	assert.False(t, IsValidStatus(""))
}

func TestIsActiveStatus(t *testing.T) {
	assert.True(t, IsActiveStatus(StatusPending))
	assert.True(t, IsActiveStatus(StatusContacted))
	assert.True(t, IsActiveStatus(StatusEnrolled))
	assert.False(t, IsActiveStatus(StatusDeclined))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusContacted, true},
		{StatusPending, StatusEnrolled, true},
		{StatusPending, StatusDeclined, true},
		{StatusContacted, StatusEnrolled, true},
		{StatusContacted, StatusDeclined, true},
		{StatusContacted, StatusPending, false},
		{StatusEnrolled, StatusPending, false},
		{StatusEnrolled, StatusContacted, false},
		{StatusEnrolled, StatusDeclined, false},
		{StatusDeclined, StatusPending, false},
		{StatusDeclined, StatusEnrolled, false},
		// same-status writes are allowed everywhere
		{StatusPending, StatusPending, true},
		{StatusEnrolled, StatusEnrolled, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
