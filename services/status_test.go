package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{StatusApplied, StatusShortlisted},
		{StatusApplied, StatusRejected},
		{StatusShortlisted, StatusSelected},
		{StatusSelected, StatusCompleted},
	}
	for _, tc := range allowed {
		assert.True(t, canTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to string }{
		{StatusApplied, StatusSelected},
		{StatusApplied, StatusCompleted},
		{StatusShortlisted, StatusApplied},
		{StatusShortlisted, StatusCompleted},
		{StatusShortlisted, StatusRejected},
		{StatusSelected, StatusShortlisted},
		{StatusSelected, StatusRejected},
		{StatusCompleted, StatusRejected},
		{StatusCompleted, StatusApplied},
		{StatusRejected, StatusApplied},
		{StatusRejected, StatusShortlisted},
	}
	for _, tc := range denied {
		assert.False(t, canTransition(tc.from, tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		StatusApplied:     StatusApplied,
		StatusShortlisted: StatusShortlisted,
		StatusSelected:    StatusSelected,
		StatusCompleted:   StatusCompleted,
		StatusRejected:    StatusRejected,
		"pending":         StatusApplied,
		"reviewed":        StatusShortlisted,
		"accepted":        StatusSelected,
		"":                StatusApplied,
		"garbage":         StatusApplied,
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeStatus(in), "normalizeStatus(%q)", in)
	}
}

func TestIsKnownStatus(t *testing.T) {
	for _, s := range []string{StatusApplied, StatusShortlisted, StatusSelected, StatusCompleted, StatusRejected} {
		assert.True(t, isKnownStatus(s))
	}
	assert.False(t, isKnownStatus("pending"), "legacy values are normalized on read, not accepted as input")
	assert.False(t, isKnownStatus(""))
}
