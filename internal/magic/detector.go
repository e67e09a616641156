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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiscan/magiscan/internal/fs"
)

// DefaultMaxReadBytes bounds the header read: signatures live at the
// start of a file, so a small prefix is enough.
const DefaultMaxReadBytes = 8192

// ErrNotAFile indicates the target exists but is not a regular file.
var ErrNotAFile = errors.New("not a regular file")

// extAliases maps extensions considered equivalent for mismatch
// purposes. The table is symmetric.
var extAliases = map[string]string{
	"jpg":  "jpeg",
	"jpeg": "jpg",
	"htm":  "html",
	"html": "htm",
	"tif":  "tiff",
	"tiff": "tif",
}

// Detector identifies file types from header bytes and flags files
// whose claimed extension disagrees with the detected type. It only
// reads the database, so a single Detector is safe to share across
// goroutines once built.
type Detector struct {
	db           *Database
	maxReadBytes int
}

// NewDetector builds a detector over db. A nil db selects the default
// catalog; maxReadBytes <= 0 selects DefaultMaxReadBytes.
func NewDetector(db *Database, maxReadBytes int) *Detector {
	if db == nil {
		db = DefaultDatabase()
	}
	if maxReadBytes <= 0 {
		maxReadBytes = DefaultMaxReadBytes
	}
	return &Detector{
		db:           db,
		maxReadBytes: maxReadBytes,
	}
}

// Database returns the signature database backing the detector.
func (d *Detector) Database() *Database {
	return d.db
}

// Match scans the signature list in insertion order and returns the
// first matching signature. Catalog ordering encodes priority: a more
// general pattern registered first wins over a more specific one.
func (d *Detector) Match(buf []byte) (Signature, bool) {
	for _, sig := range d.db.sigs {
		if sig.Matches(buf) {
			return sig, true
		}
	}
	return Signature{}, false
}

// Detect analyzes a single file: it reads a bounded header, matches it
// against the database and reconciles the detected type with the
// extension claimed by the filename.
func (d *Detector) Detect(path string) (Result, error) {
	finfo, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("unable to stat %q: %w", path, err)
	}
	if !finfo.Mode().IsRegular() {
		return Result{}, fmt.Errorf("%q: %w", path, ErrNotAFile)
	}

	claimed := claimedExt(path)

	f, err := fs.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("unable to open %q: %w", path, err)
	}
	defer f.Close()

	header, err := fs.ReadHeader(f, d.maxReadBytes)
	if err != nil {
		return Result{}, fmt.Errorf("unable to read header of %q: %w", path, err)
	}

	res := Result{
		Path:        path,
		ClaimedExt:  claimed,
		Confidence:  ConfidenceNone,
		Description: UnknownTypeDescription,
		Size:        finfo.Size(),
	}

	if sig, ok := d.Match(header); ok {
		res.DetectedType = sig.Extension
		res.Description = sig.Description
		res.MIMEType = sig.MIMEType
		res.Confidence = ConfidenceHigh
	}

	res.Mismatch = d.IsMismatch(claimed, res.DetectedType)
	return res, nil
}

// IsMismatch decides whether a claimed and a detected extension
// disagree. The checks are ordered: missing information, exact match
// and alias pairs all suppress the flag, and so does any signature
// pair registered under the two extensions with an identical pattern
// and offset (which is what keeps a .docx from being flagged against
// a detector reporting "zip").
func (d *Detector) IsMismatch(claimedExt, detectedExt string) bool {
	if claimedExt == "" || detectedExt == "" {
		return false
	}

	claimed := NormalizeExt(claimedExt)
	detected := NormalizeExt(detectedExt)

	if claimed == detected {
		return false
	}

	if alias, ok := extAliases[claimed]; ok && alias == detected {
		return false
	}

	for _, csig := range d.db.SignaturesFor(claimed) {
		for _, dsig := range d.db.SignaturesFor(detected) {
			if csig.Offset == dsig.Offset && bytes.Equal(csig.Pattern, dsig.Pattern) {
				return false
			}
		}
	}
	return true
}

func claimedExt(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	// Dotfiles like ".gitignore" have no extension to claim.
	if ext == "" || ext == base {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
