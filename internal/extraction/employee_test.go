package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmployee_LabeledName(t *testing.T) {
	got, ok := extractEmployee("Name: john doe\n123 Main St")
	require.True(t, ok)
	assert.Equal(t, "John Doe", got)
}

func TestExtractEmployee_Labels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"customer", "Customer: alice\n42 items", "Alice"},
		{"employee upper", "EMPLOYEE: SARAH CONNOR\n999", "Sarah Connor"},
		{"courtesy title", "Mr. bob smith\n123 Main", "Bob Smith"},
		{"ms", "Ms jane doe\n5 bags", "Jane Doe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractEmployee(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractEmployee_LabelBeatsCourtesyTitle(t *testing.T) {
	got, ok := extractEmployee("Customer: amy pond\n2x tea\nMr. rory williams")
	require.True(t, ok)
	assert.Equal(t, "Amy Pond", got)
}

func TestExtractEmployee_CaptureCrossesLines(t *testing.T) {
	// The capture class includes whitespace, so it only stops at the first
	// rune outside letters and spaces. Line breaks do not end it.
	got, ok := extractEmployee("Customer: jane roe\nvip member")
	require.True(t, ok)
	assert.Equal(t, "Jane Roe\nVip Member", got)
}

func TestExtractEmployee_LengthBounds(t *testing.T) {
	tests := []struct {
		name string
		size int
		ok   bool
	}{
		{"two runes rejected", 2, false},
		{"three runes accepted", 3, true},
		{"forty nine accepted", 49, true},
		{"fifty rejected", 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "Name: " + strings.Repeat("a", tt.size) + "\n12"
			got, ok := extractEmployee(text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.size, len([]rune(got)))
			}
		})
	}
}

func TestExtractEmployee_Absent(t *testing.T) {
	_, ok := extractEmployee("total 45.67\nthank you")
	assert.False(t, ok)
}
