package extraction

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDescription_TopLineMerchant(t *testing.T) {
	got, ok := extractDescription("Joe's Coffee Shop\n123 Main St\nTotal: 45.00")
	require.True(t, ok)
	assert.Equal(t, "Joe's Coffee Shop", got)
}

func TestExtractDescription_SkipsDateAndNumericLines(t *testing.T) {
	got, ok := extractDescription("15/03/2024\n123 456\nACME Supermart\nTotal 12")
	require.True(t, ok)
	assert.Equal(t, "ACME Supermart", got)
}

func TestExtractDescription_SkipsShortLines(t *testing.T) {
	got, ok := extractDescription("ABC\nWidget Works")
	require.True(t, ok)
	assert.Equal(t, "Widget Works", got)
}

func TestExtractDescription_StripsDisallowedRunes(t *testing.T) {
	got, ok := extractDescription("** ACME Mart! **")
	require.True(t, ok)
	assert.Equal(t, "ACME Mart", got)
}

func TestExtractDescription_KeepsScanningWhenCleaningGuts(t *testing.T) {
	// The first line survives the shape checks but cleans down to a single
	// rune, so the scan moves on.
	got, ok := extractDescription("#1 @!\nTarget Store")
	require.True(t, ok)
	assert.Equal(t, "Target Store", got)
}

func TestExtractDescription_OnlyFirstFiveLines(t *testing.T) {
	_, ok := extractDescription("111 222\n333 444\n555/666\n777-888\n999:000\nReal Merchant")
	assert.False(t, ok)
}

func TestExtractDescription_TruncatesLongLines(t *testing.T) {
	got, ok := extractDescription(strings.Repeat("Ab", 60))
	require.True(t, ok)
	assert.Equal(t, 100, len([]rune(got)))
	assert.Equal(t, strings.Repeat("Ab", 50), got)
}

func TestExtractDescription_OutputCharset(t *testing.T) {
	allowed := regexp.MustCompile(`^[a-zA-Z0-9\s&'-]*$`)

	got, ok := extractDescription("Café—München™ (Store #42)")
	require.True(t, ok)
	assert.Equal(t, "CafMnchen Store 42", got)
	assert.Regexp(t, allowed, got)
}

func TestExtractDescription_Absent(t *testing.T) {
	for _, text := range []string{"", "   \n  ", "!!!!\n@@@@\n$$$$", "12/12/2024\n99.99"} {
		_, ok := extractDescription(text)
		assert.False(t, ok, "text %q", text)
	}
}
