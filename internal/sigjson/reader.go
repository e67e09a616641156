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
package sigjson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/magiscan/magiscan/internal/magic"
)

// Read builds a database from a serialized catalog. A top-level parse
// failure yields no database rather than a partial one; an entry whose
// hex cannot be parsed (or whose pattern is empty) is skipped and
// counted, and the rest of the import continues.
func Read(r io.Reader) (db *magic.Database, skipped int, err error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, 0, fmt.Errorf("unable to parse signature database: %w", err)
	}

	if doc.ReplaceDefaults {
		db = magic.NewDatabase()
	} else {
		db = magic.DefaultDatabase()
	}

	for _, entry := range doc.Signatures {
		pattern, err := ParseHex(entry.Signature)
		if err != nil {
			skipped++
			continue
		}

		ext := entry.Extension
		if ext == "" {
			ext = "unknown"
		}
		desc := entry.Description
		if desc == "" {
			desc = magic.UnknownTypeDescription
		}

		sig := magic.New(pattern, ext, desc, entry.Offset, entry.MIMEType)
		if err := db.Add(sig); err != nil {
			skipped++
		}
	}
	return db, skipped, nil
}

// Load reads a catalog from a JSON file.
func Load(path string) (*magic.Database, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to open signature database %q: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}
