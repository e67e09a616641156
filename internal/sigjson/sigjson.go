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

// Package sigjson implements the JSON interchange format for signature
// catalogs: import, export and merge of signature sets.
package sigjson

const FormatVersion = "1.0"

// Entry is a single serialized signature. The Signature field holds the
// byte pattern as a hex string.
type Entry struct {
	Signature   string `json:"signature"`
	Extension   string `json:"extension"`
	Description string `json:"description"`
	Offset      int    `json:"offset"`
	MIMEType    string `json:"mime_type,omitempty"`
}

// Document is a serialized signature catalog. When ReplaceDefaults is
// set, the resulting database starts empty instead of pre-seeded with
// the built-in catalog.
type Document struct {
	Version         string  `json:"version"`
	ReplaceDefaults bool    `json:"replace_defaults,omitempty"`
	TotalSignatures int     `json:"total_signatures,omitempty"`
	Signatures      []Entry `json:"signatures"`
}

// Source points at a curated signature reference. Fetching and scraping
// are out of scope: catalogs are hand-converted to the JSON format.
type Source struct {
	ID     string
	Name   string
	URL    string
	Format string
}

// Sources lists well-known signature references worth converting by
// hand.
var Sources = []Source{
	{
		ID:     "gary_kessler",
		Name:   "Gary Kessler File Signatures",
		URL:    "https://www.garykessler.net/library/file_sigs.html",
		Format: "html",
	},
	{
		ID:     "wikipedia",
		Name:   "Wikipedia File Signatures",
		URL:    "https://en.wikipedia.org/wiki/List_of_file_signatures",
		Format: "html",
	},
}

// ExampleDocument is a minimal catalog users can copy and extend.
const ExampleDocument = `{
  "version": "1.0",
  "replace_defaults": false,
  "signatures": [
    {
      "signature": "504B0304",
      "extension": "zip",
      "description": "ZIP Archive",
      "offset": 0,
      "mime_type": "application/zip"
    },
    {
      "signature": "FFD8FFE0",
      "extension": "jpg",
      "description": "JPEG Image (JFIF)",
      "offset": 0,
      "mime_type": "image/jpeg"
    },
    {
      "signature": "25504446",
      "extension": "pdf",
      "description": "PDF Document",
      "offset": 0,
      "mime_type": "application/pdf"
    },
    {
      "signature": "89504E470D0A1A0A",
      "extension": "png",
      "description": "PNG Image",
      "offset": 0,
      "mime_type": "image/png"
    }
  ]
}
`
