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
	"errors"
	"sort"
)

var ErrEmptyPattern = errors.New("signature pattern must not be empty")

// Database holds an ordered collection of signatures. Insertion order is
// the match-priority order: the first signature added that matches a
// buffer wins. Multiple signatures may share an extension (gif 87a/89a)
// or a byte pattern (zip-based Office formats); such overlaps are
// legitimate and must not be deduplicated.
type Database struct {
	sigs  []Signature
	byExt map[string][]Signature
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{
		byExt: make(map[string][]Signature),
	}
}

// Add appends a signature and indexes it under its normalized extension.
// The only validation is a non-empty pattern: callers are responsible for
// semantic correctness, and registering a pattern that conflicts with an
// existing one is explicitly allowed.
func (db *Database) Add(sig Signature) error {
	if len(sig.Pattern) == 0 {
		return ErrEmptyPattern
	}

	sig = New(sig.Pattern, sig.Extension, sig.Description, sig.Offset, sig.MIMEType)

	db.sigs = append(db.sigs, sig)
	db.byExt[sig.Extension] = append(db.byExt[sig.Extension], sig)
	return nil
}

// SignaturesFor returns the signatures registered under ext, in
// insertion order.
func (db *Database) SignaturesFor(ext string) []Signature {
	return db.byExt[NormalizeExt(ext)]
}

// All returns a copy of the full ordered signature list.
func (db *Database) All() []Signature {
	sigs := make([]Signature, len(db.sigs))
	copy(sigs, db.sigs)
	return sigs
}

// Extensions returns the sorted set of distinct extensions.
func (db *Database) Extensions() []string {
	exts := make([]string, 0, len(db.byExt))
	for ext := range db.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Size returns the number of signatures.
func (db *Database) Size() int {
	return len(db.sigs)
}

// Merge combines two databases. Every signature of a is kept; signatures
// of b are appended only if no existing entry shares the same
// (pattern, offset) pair. Extension and description are not consulted,
// so a pattern already present under another extension counts as a
// duplicate.
func Merge(a, b *Database) *Database {
	merged := NewDatabase()
	for _, sig := range a.All() {
		_ = merged.Add(sig)
	}

	for _, sig := range b.All() {
		if !containsPattern(merged.sigs, sig) {
			_ = merged.Add(sig)
		}
	}
	return merged
}

func containsPattern(sigs []Signature, sig Signature) bool {
	for _, s := range sigs {
		if s.Offset == sig.Offset && bytes.Equal(s.Pattern, sig.Pattern) {
			return true
		}
	}
	return false
}
