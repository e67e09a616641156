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

	"github.com/spf13/cobra"

	"github.com/magiscan/magiscan/internal/report"
)

func DefineAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "analyze <file>",
		Short:        "Identify the true type of a file and flag extension mismatches",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunAnalyze,
	}
}

func RunAnalyze(cmd *cobra.Command, args []string) error {
	det, err := newDetector(newLogger())
	if err != nil {
		return err
	}

	res, err := det.Detect(args[0])
	if err != nil {
		return err
	}

	opts := report.PrintOptions{NoColor: cfg.NoColor}
	report.WriteResult(os.Stdout, res, opts)

	if res.Mismatch {
		fmt.Println("WARNING: this file may be disguised or corrupted!")
		fmt.Println("The file extension doesn't match the actual content.")
	}
	return nil
}
