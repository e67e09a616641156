package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magiscan/magiscan/internal/magic"
	"github.com/magiscan/magiscan/internal/report"
)

func fakeResults(total, mismatches int) []magic.Result {
	results := make([]magic.Result, total)
	for i := range results {
		results[i] = magic.Result{
			Path:         "file" + string(rune('a'+i)),
			DetectedType: "pdf",
			ClaimedExt:   "pdf",
			Confidence:   magic.ConfidenceHigh,
		}
	}
	for i := 0; i < mismatches; i++ {
		results[i].ClaimedExt = "txt"
		results[i].Mismatch = true
	}
	return results
}

func TestSummarize(t *testing.T) {
	s := report.Summarize(fakeResults(10, 3))

	require.Equal(t, 10, s.Total)
	require.Equal(t, 7, s.Matches)
	require.Equal(t, 3, s.Mismatches)
	require.InDelta(t, 70.0, s.SuccessRate(), 0.001)
	require.Equal(t, "70.0%", s.SuccessRateString())
}

func TestSummarize_Empty(t *testing.T) {
	s := report.Summarize(nil)

	require.Equal(t, 0, s.Total)
	require.Equal(t, 0, s.Matches)
	require.Equal(t, 0, s.Mismatches)
	require.Equal(t, "N/A", s.SuccessRateString())
}

func TestMismatches_PreservesOrder(t *testing.T) {
	results := []magic.Result{
		{Path: "a", Mismatch: true},
		{Path: "b"},
		{Path: "c", Mismatch: true},
		{Path: "d"},
		{Path: "e", Mismatch: true},
	}

	got := report.Mismatches(results)
	require.Len(t, got, 3)
	require.Equal(t, "a", got[0].Path)
	require.Equal(t, "c", got[1].Path)
	require.Equal(t, "e", got[2].Path)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	report.Write(&buf, fakeResults(10, 3), report.PrintOptions{NoColor: true})

	out := buf.String()
	require.Contains(t, out, "Total Files Analyzed: 10")
	require.Contains(t, out, "Matches: 7")
	require.Contains(t, out, "Mismatches: 3")
	require.Contains(t, out, "Success Rate: 70.0%")
	require.Contains(t, out, "MISMATCHED FILES")
	require.NotContains(t, out, "\x1b[")
}

func TestWrite_NoMismatchSection(t *testing.T) {
	var buf bytes.Buffer
	report.Write(&buf, fakeResults(5, 0), report.PrintOptions{NoColor: true})

	require.NotContains(t, buf.String(), "MISMATCHED FILES")
}

func TestWriteResult(t *testing.T) {
	res := magic.Result{
		Path:         "/tmp/evil.txt",
		DetectedType: "pdf",
		ClaimedExt:   "txt",
		Mismatch:     true,
		Confidence:   magic.ConfidenceHigh,
		MIMEType:     "application/pdf",
		Description:  "Portable Document Format",
		Size:         2048,
	}

	var buf bytes.Buffer
	report.WriteResult(&buf, res, report.PrintOptions{NoColor: true})

	out := buf.String()
	require.Contains(t, out, "File: /tmp/evil.txt")
	require.Contains(t, out, "Status: MISMATCH")
	require.Contains(t, out, "Claimed Extension: .txt")
	require.Contains(t, out, "Detected Type: .pdf")
	require.Contains(t, out, "Confidence: HIGH")
	require.Contains(t, out, "MIME Type: application/pdf")
	require.Contains(t, out, "File Size: 2KB (2048 bytes)")
}

func TestWriteResult_AbsentFields(t *testing.T) {
	res := magic.Result{
		Path:        "mystery",
		Confidence:  magic.ConfidenceNone,
		Description: magic.UnknownTypeDescription,
	}

	var buf bytes.Buffer
	report.WriteResult(&buf, res, report.PrintOptions{NoColor: true})

	out := buf.String()
	require.Contains(t, out, "Claimed Extension: NONE")
	require.Contains(t, out, "Detected Type: UNKNOWN")
	require.Contains(t, out, "Confidence: NONE")
	require.NotContains(t, out, "MIME Type:")
}

func TestWriteList(t *testing.T) {
	results := []magic.Result{
		{Path: "ok.pdf", DetectedType: "pdf", ClaimedExt: "pdf"},
		{Path: "bad.txt", DetectedType: "pdf", ClaimedExt: "txt", Mismatch: true},
	}

	var buf bytes.Buffer
	report.WriteList(&buf, results, report.PrintOptions{NoColor: true})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "  ok.pdf"))
	require.True(t, strings.HasPrefix(lines[2], "! bad.txt"))
}
