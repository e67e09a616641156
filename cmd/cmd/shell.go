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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magiscan/magiscan/internal/report"
	"github.com/magiscan/magiscan/internal/scan"
)

func DefineShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "shell",
		Short:        "Start an interactive analysis session",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         RunShell,
	}
}

func RunShell(cmd *cobra.Command, args []string) error {
	log := newLogger()

	det, err := newDetector(log)
	if err != nil {
		return err
	}

	fmt.Println("Interactive mode. Commands:")
	fmt.Println("  file <path>     - Analyze a single file")
	fmt.Println("  dir <path>      - Analyze a directory")
	fmt.Println("  dirr <path>     - Analyze a directory recursively")
	fmt.Println("  list            - List supported file types")
	fmt.Println("  quit            - Exit")

	opts := report.PrintOptions{NoColor: cfg.NoColor}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, arg := splitCommand(line)
		switch name {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return nil

		case "list":
			fmt.Printf("Supported extensions: %s\n",
				strings.Join(det.Database().Extensions(), ", "))

		case "file":
			if arg == "" {
				fmt.Println("usage: file <path>")
				continue
			}
			res, err := det.Detect(arg)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			report.WriteResult(os.Stdout, res, opts)

		case "dir", "dirr":
			if arg == "" {
				fmt.Printf("usage: %s <path>\n", name)
				continue
			}
			results, err := scan.Scan(arg, det, scan.Options{
				Recursive: name == "dirr",
			}, log)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			report.Write(os.Stdout, results, opts)

		default:
			fmt.Printf("unknown command %q\n", name)
		}
	}
}

func splitCommand(line string) (name, arg string) {
	parts := strings.SplitN(line, " ", 2)
	name = strings.ToLower(parts[0])
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}
	return name, arg
}
