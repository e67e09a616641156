// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package magic

import (
	"bytes"
	"fmt"
	"strings"
)

// Signature associates a byte pattern at a fixed offset with a file type.
type Signature struct {
	Pattern     []byte // Byte sequence identifying the file type
	Offset      int    // Position in the file where the pattern appears
	Extension   string // File extension, e.g. "pdf", "jpg"
	Description string
	MIMEType    string
}

// New builds a Signature with a normalized extension. An empty mimeType
// is synthesized as "application/<extension>".
func New(pattern []byte, extension, description string, offset int, mimeType string) Signature {
	ext := NormalizeExt(extension)
	if mimeType == "" {
		mimeType = "application/" + ext
	}
	return Signature{
		Pattern:     pattern,
		Offset:      offset,
		Extension:   ext,
		Description: description,
		MIMEType:    mimeType,
	}
}

// Matches reports whether buf contains the signature pattern at its offset.
// Buffers too short to cover offset+pattern never match.
func (s Signature) Matches(buf []byte) bool {
	if len(buf) < s.Offset+len(s.Pattern) {
		return false
	}
	return bytes.Equal(buf[s.Offset:s.Offset+len(s.Pattern)], s.Pattern)
}

func (s Signature) String() string {
	return fmt.Sprintf("%s - %s", strings.ToUpper(s.Extension), s.Description)
}

// NormalizeExt lowercases an extension and strips any leading dots.
func NormalizeExt(ext string) string {
	return strings.TrimLeft(strings.ToLower(ext), ".")
}
