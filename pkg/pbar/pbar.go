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
package pbar

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const MinRefreshRate = time.Millisecond * 200

// ProgressBarState holds all the data needed to render the progress bar
type ProgressBarState struct {
	TotalFiles      int
	ScannedFiles    int
	MismatchesFound int
	StartTime       time.Time
	LastUpdateTime  time.Time
}

// NewProgressBarState initializes a new ProgressBarState
func NewProgressBarState(totalFiles int) *ProgressBarState {
	return &ProgressBarState{
		TotalFiles: totalFiles,
		StartTime:  time.Now(),
	}
}

// Render updates and prints the progress bar line
func (pbs *ProgressBarState) Render(force bool) {
	if !force && time.Since(pbs.LastUpdateTime) < MinRefreshRate {
		return
	}
	if pbs.TotalFiles == 0 {
		return
	}

	percentage := float64(pbs.ScannedFiles) / float64(pbs.TotalFiles) * 100

	barLength := 20
	filledLen := int(float64(barLength) * percentage / 100)
	var bar string
	if filledLen >= barLength {
		bar = strings.Repeat("=", barLength)
	} else {
		bar = strings.Repeat("=", filledLen) + ">" + strings.Repeat(" ", barLength-filledLen-1)
	}

	pbs.LastUpdateTime = time.Now()

	// \r moves the cursor to the beginning of the line; trailing spaces
	// clear leftovers from a previous longer line
	fmt.Fprintf(os.Stdout, "\r[INFO] Progress: [%s] %3.0f%% (%d/%d files) | Mismatches: %d    ",
		bar,
		percentage,
		pbs.ScannedFiles,
		pbs.TotalFiles,
		pbs.MismatchesFound)

	os.Stdout.Sync()
}

// Finish prints a newline, effectively finishing the progress bar output
func (pbs *ProgressBarState) Finish() {
	fmt.Println()
}
