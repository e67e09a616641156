package sigjson_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magiscan/magiscan/internal/sigjson"
)

func TestParseHex(t *testing.T) {
	want := []byte{0xFF, 0xD8, 0xFF}

	for _, s := range []string{
		"FFD8FF",
		"FF D8 FF",
		"0xFFD8FF",
		"FF-D8-FF",
		"FF:D8:FF",
		`\xFF\xD8\xFF`,
		"ffd8ff",
		"  FFD8FF  ",
	} {
		got, err := sigjson.ParseHex(s)
		require.NoError(t, err, "input %q", s)
		require.Equal(t, want, got, "input %q", s)
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, s := range []string{
		"ZZ",
		"FFD",
		"hello world",
	} {
		_, err := sigjson.ParseHex(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestFormatHex(t *testing.T) {
	require.Equal(t, "FFD8FF", sigjson.FormatHex([]byte{0xFF, 0xD8, 0xFF}))
	require.Equal(t, "504B0304", sigjson.FormatHex([]byte("PK\x03\x04")))
	require.Equal(t, "", sigjson.FormatHex(nil))
}

func TestParseHex_RoundTrip(t *testing.T) {
	pattern := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	got, err := sigjson.ParseHex(sigjson.FormatHex(pattern))
	require.NoError(t, err)
	require.Equal(t, pattern, got)
}
