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
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/magiscan/magiscan/internal/magic"
	"github.com/magiscan/magiscan/internal/report"
	"github.com/magiscan/magiscan/internal/scan"
)

func DefineScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "scan <directory>",
		Short:        "Scan a directory for files whose extension disagrees with their content",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunScan,
	}

	cmd.Flags().BoolP("recursive", "r", false, "scan subdirectories recursively")
	cmd.Flags().StringSlice("include", nil, "glob patterns of files to include (e.g. '**/*.pdf')")
	cmd.Flags().StringSlice("exclude", nil, "glob patterns of files to exclude")
	cmd.Flags().StringP("output", "o", "", "write the text report to the specified file")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")
	cmd.Flags().Bool("details", false, "list every scanned file, not only mismatches")

	return cmd
}

func RunScan(cmd *cobra.Command, args []string) error {
	dir := args[0]

	recursive, _ := cmd.Flags().GetBool("recursive")
	include, _ := cmd.Flags().GetStringSlice("include")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	output, _ := cmd.Flags().GetString("output")
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	details, _ := cmd.Flags().GetBool("details")

	log := newLogger()

	det, err := newDetector(log)
	if err != nil {
		return err
	}

	session := scan.GenSessionID()

	fmt.Println("[INFO] Starting scanning operation...")
	fmt.Printf("[INFO] Source: \t%s\n", absPath(dir))
	fmt.Printf("[INFO] Recursive: \t%v\n", recursive)
	fmt.Printf("[INFO] Session: \t%s\n", session)
	fmt.Printf("[INFO] Scanning against %d signatures...\n", det.Database().Size())

	start := time.Now()

	results, err := scan.Scan(dir, det, scan.Options{
		Recursive:    recursive,
		Include:      include,
		Exclude:      exclude,
		ShowProgress: !noProgress,
	}, log)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No files found to analyze.")
		return nil
	}

	opts := report.PrintOptions{
		NoColor:  cfg.NoColor,
		Duration: time.Since(start),
	}
	report.Write(os.Stdout, results, opts)

	if details {
		fmt.Println("\nDETAILED RESULTS:")
		report.WriteList(os.Stdout, results, opts)
	}

	if output != "" {
		if err := writeReportFile(output, results, opts); err != nil {
			return err
		}
		fmt.Printf("[INFO] Report saved to: \t%s\n", absPath(output))
	}
	return nil
}

func writeReportFile(path string, results []magic.Result, opts report.PrintOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create report file %q: %w", path, err)
	}
	// Report files are meant for later inspection: no ANSI colors.
	opts.NoColor = true
	report.Write(f, results, opts)
	report.WriteList(f, results, opts)
	return f.Close()
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
