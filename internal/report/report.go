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

// Package report aggregates detection results into summary statistics
// and renders them for humans. The detection core stays presentation
// free: everything here only consumes Result fields.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/magiscan/magiscan/internal/magic"
	fmtutil "github.com/magiscan/magiscan/pkg/util/format"
)

const separator = "======================================================================"

// Summary holds the aggregate counts of a batch of results.
type Summary struct {
	Total      int
	Matches    int
	Mismatches int
}

// Summarize computes the aggregate counts over results.
func Summarize(results []magic.Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Mismatch {
			s.Mismatches++
		}
	}
	s.Matches = s.Total - s.Mismatches
	return s
}

// SuccessRate returns matches/total as a percentage. It is only
// meaningful when Total > 0; use SuccessRateString for rendering.
func (s Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Matches) / float64(s.Total) * 100
}

// SuccessRateString renders the success rate, or "N/A" for an empty
// batch.
func (s Summary) SuccessRateString() string {
	if s.Total == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", s.SuccessRate())
}

// Mismatches returns the subsequence of results with the mismatch flag
// set, preserving the original order.
func Mismatches(results []magic.Result) []magic.Result {
	var out []magic.Result
	for _, r := range results {
		if r.Mismatch {
			out = append(out, r)
		}
	}
	return out
}

type PrintOptions struct {
	NoColor  bool
	Duration time.Duration
}

// Write renders the aggregate digest plus, when mismatches exist, the
// full detail of each mismatched result.
func Write(w io.Writer, results []magic.Result, opts PrintOptions) {
	s := Summarize(results)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "FILE TYPE IDENTIFICATION REPORT")
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Files Analyzed: %d\n", s.Total)
	fmt.Fprintf(w, "Matches: %d\n", s.Matches)
	fmt.Fprintf(w, "Mismatches: %d\n", s.Mismatches)
	fmt.Fprintf(w, "Success Rate: %s\n", s.SuccessRateString())
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan Duration: %.2fs\n", opts.Duration.Seconds())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, separator)

	if s.Mismatches > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "MISMATCHED FILES (POTENTIAL SECURITY RISK):")
		fmt.Fprintln(w, separator)
		for _, r := range Mismatches(results) {
			WriteResult(w, r, opts)
		}
	}
}

// WriteResult renders the bordered detail block of a single result.
func WriteResult(w io.Writer, r magic.Result, opts PrintOptions) {
	status := "MATCH"
	if r.Mismatch {
		status = "MISMATCH"
	}
	if !opts.NoColor {
		status = colorStatus(r.Mismatch)
	}

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "File: %s\n", r.Path)
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Claimed Extension: %s\n", dotted(r.ClaimedExt, "NONE"))
	fmt.Fprintf(w, "Detected Type: %s\n", dotted(r.DetectedType, "UNKNOWN"))
	fmt.Fprintf(w, "Confidence: %s\n", r.Confidence)
	if r.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", r.Description)
	}
	if r.MIMEType != "" {
		fmt.Fprintf(w, "MIME Type: %s\n", r.MIMEType)
	}
	fmt.Fprintf(w, "File Size: %s (%d bytes)\n", fmtutil.FormatBytes(r.Size), r.Size)
	fmt.Fprintln(w, separator)
}

// WriteList renders a compact two-line entry per result; mismatches
// are flagged with an exclamation mark.
func WriteList(w io.Writer, results []magic.Result, opts PrintOptions) {
	for _, r := range results {
		marker := " "
		if r.Mismatch {
			marker = "!"
		}
		fmt.Fprintf(w, "%s %s\n", marker, r.Path)
		fmt.Fprintf(w, "   Claimed: %s | Detected: %s\n",
			dotted(r.ClaimedExt, "NONE"),
			dotted(r.DetectedType, "UNKNOWN"),
		)
	}
}

func dotted(ext, fallback string) string {
	if ext == "" {
		return fallback
	}
	return "." + strings.ToLower(ext)
}

func colorStatus(mismatch bool) string {
	if mismatch {
		return "\x1b[31mMISMATCH\x1b[0m" // red
	}
	return "\x1b[32mMATCH\x1b[0m" // green
}
