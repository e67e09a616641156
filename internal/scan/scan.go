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
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/magiscan/magiscan/internal/logger"
	"github.com/magiscan/magiscan/internal/magic"
	"github.com/magiscan/magiscan/pkg/pbar"
)

// ErrNotADir indicates the scan target exists but is not a directory.
var ErrNotADir = errors.New("not a directory")

type Options struct {
	Recursive    bool
	Include      []string
	Exclude      []string
	ShowProgress bool
}

// Scan applies det to every regular file of a directory and collects
// one result per file, in filesystem traversal order. A failure on an
// individual file is logged and the file excluded from the results;
// only a failure on the directory itself aborts the scan.
func Scan(dir string, det *magic.Detector, opts Options, log *logger.Logger) ([]magic.Result, error) {
	finfo, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to stat %q: %w", dir, err)
	}
	if !finfo.IsDir() {
		return nil, fmt.Errorf("%q: %w", dir, ErrNotADir)
	}

	files, err := listFiles(dir, opts)
	if err != nil {
		return nil, err
	}

	var bar *pbar.ProgressBarState
	if opts.ShowProgress {
		bar = pbar.NewProgressBarState(len(files))
	}

	results := make([]magic.Result, 0, len(files))
	for _, path := range files {
		res, err := det.Detect(path)
		if err != nil {
			log.Warnf("skipping %s: %v", path, err)
			continue
		}
		results = append(results, res)

		if bar != nil {
			bar.ScannedFiles++
			if res.Mismatch {
				bar.MismatchesFound++
			}
			bar.Render(false)
		}
	}

	if bar != nil {
		bar.Render(true)
		bar.Finish()
	}
	return results, nil
}

// listFiles enumerates the regular files eligible for scanning, either
// the immediate children of dir or, in recursive mode, the full
// subtree. Traversal order is lexical, which keeps batches
// deterministic.
func listFiles(dir string, opts Options) ([]string, error) {
	var files []string

	if !opts.Recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("unable to read directory %q: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() && allowed(dir, filepath.Join(dir, entry.Name()), opts) {
				files = append(files, filepath.Join(dir, entry.Name()))
			}
		}
		return files, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are reported by the caller per file;
			// the walk itself keeps going.
			return nil
		}
		if d.Type().IsRegular() && allowed(dir, path, opts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to walk directory %q: %w", dir, err)
	}
	return files, nil
}

// allowed applies the include/exclude glob filters to a path relative
// to the scan root. Globs match against the relative path and, as a
// convenience, against the bare file name.
func allowed(root, path string, opts Options) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, g := range opts.Exclude {
		if ok, _ := doublestar.Match(g, rel); ok {
			return false
		}
		if ok, _ := doublestar.Match(g, filepath.Base(rel)); ok {
			return false
		}
	}

	if len(opts.Include) == 0 {
		return true
	}
	for _, g := range opts.Include {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}

// GenSessionID creates a unique name for a scan session, combining a
// readable timestamp with a short random suffix.
func GenSessionID() string {
	return fmt.Sprintf("%s_%s",
		time.Now().Format("20060102_150405"),
		uuid.New().String()[:8],
	)
}
