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

// Write serializes db in the normalized export form: uppercase hex
// patterns, format version and a total_signatures count.
func Write(w io.Writer, db *magic.Database) error {
	sigs := db.All()

	entries := make([]Entry, len(sigs))
	for i, sig := range sigs {
		entries[i] = Entry{
			Signature:   FormatHex(sig.Pattern),
			Extension:   sig.Extension,
			Description: sig.Description,
			Offset:      sig.Offset,
			MIMEType:    sig.MIMEType,
		}
	}

	// Exports are complete catalogs: re-importing one must reproduce
	// exactly the exported database, not the defaults plus a copy.
	doc := Document{
		Version:         FormatVersion,
		ReplaceDefaults: true,
		TotalSignatures: len(entries),
		Signatures:      entries,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Save writes a catalog to a JSON file.
func Save(path string, db *magic.Database) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %q: %w", path, err)
	}
	if err := Write(f, db); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
