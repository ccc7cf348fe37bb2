package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumericRunInteger(t *testing.T) {
	n, ok := parseNumericRun([]byte("-42"))
	require.True(t, ok)
	assert.False(t, n.isReal)
	assert.EqualValues(t, -42, n.intVal)
}

func TestParseNumericRunLeadingDot(t *testing.T) {
	n, ok := parseNumericRun([]byte(".5"))
	require.True(t, ok)
	assert.True(t, n.isReal)
	assert.Equal(t, "1/2", n.real.RatString())
}

func TestParseNumericRunTrailingDot(t *testing.T) {
	n, ok := parseNumericRun([]byte("5."))
	require.True(t, ok)
	assert.True(t, n.isReal)
	assert.Equal(t, "5", n.real.RatString())
}

func TestParseNumericRunRejectsMultipleDots(t *testing.T) {
	_, ok := parseNumericRun([]byte("1.2.3"))
	assert.False(t, ok)
}

func TestParseNumericRunRejectsMisplacedSign(t *testing.T) {
	_, ok := parseNumericRun([]byte("1-2"))
	assert.False(t, ok)
}

func TestParseNumericRunRejectsNoDigits(t *testing.T) {
	_, ok := parseNumericRun([]byte("."))
	assert.False(t, ok)
	_, ok = parseNumericRun([]byte("-"))
	assert.False(t, ok)
}

func TestParseNumericRunRejectsExponentialNotation(t *testing.T) {
	// spec.md §4.4 rule 4's character class is [+\-0-9.] only; unlike
	// the teacher, this package does not accept "1e5" as a real.
	_, ok := parseNumericRun([]byte("1e5"))
	assert.False(t, ok)
}
