package tracelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetEnabledRoundTrip(t *testing.T) {
	defer SetEnabled(false)

	assert.False(t, Enabled())
	SetEnabled(true)
	assert.True(t, Enabled())
	SetEnabled(false)
	assert.False(t, Enabled())
}

func TestTracefDoesNotPanicWhenDisabled(t *testing.T) {
	SetEnabled(false)
	Tracef("squaremap", "merge triggered at split=%d", 7)
}

func TestTracefDoesNotPanicWhenEnabled(t *testing.T) {
	defer SetEnabled(false)
	SetEnabled(true)
	Tracef("squaremap", "merge triggered at split=%d", 7)
}
