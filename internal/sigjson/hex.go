package sigjson

import (
	"encoding/hex"
	"strings"
)

var hexCleaner = strings.NewReplacer(
	"0x", "",
	"0X", "",
	`\x`, "",
	`\X`, "",
	" ", "",
	"-", "",
	":", "",
)

// ParseHex decodes a signature hex string. All of these forms are
// equivalent: "FFD8FF", "FF D8 FF", "0xFFD8FF", "FF-D8-FF", "FF:D8:FF"
// and the escaped "\xFF\xD8\xFF".
func ParseHex(s string) ([]byte, error) {
	return hex.DecodeString(hexCleaner.Replace(strings.TrimSpace(s)))
}

// FormatHex renders a pattern in the normalized export form: uppercase
// hex without separators.
func FormatHex(pattern []byte) string {
	return strings.ToUpper(hex.EncodeToString(pattern))
}
