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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/magiscan/magiscan/internal/magic"
	"github.com/magiscan/magiscan/internal/sigjson"
)

func DefineDBCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage signature databases (export, import, merge)",
	}

	cmd.AddCommand(defineDBExportCommand())
	cmd.AddCommand(defineDBImportCommand())
	cmd.AddCommand(defineDBMergeCommand())
	cmd.AddCommand(defineDBListCommand())
	cmd.AddCommand(defineDBExampleCommand())
	cmd.AddCommand(defineDBSourcesCommand())

	return cmd
}

func defineDBExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "export <output>",
		Short:        "Export the default signature database to a JSON file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			db := magic.DefaultDatabase()
			if err := sigjson.Save(args[0], db); err != nil {
				return err
			}
			fmt.Printf("Exported %d signatures to %s\n", db.Size(), args[0])
			return nil
		},
	}
}

func defineDBImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "import <input>",
		Short:        "Import a custom signature database from a JSON file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, skipped, err := sigjson.Load(args[0])
			if err != nil {
				return err
			}
			if skipped > 0 {
				fmt.Printf("Skipped %d invalid signature entries\n", skipped)
			}

			fmt.Printf("Loaded %d signatures (%d extensions)\n",
				db.Size(), len(db.Extensions()))

			if noTest, _ := cmd.Flags().GetBool("no-test"); !noTest {
				det := magic.NewDetector(db, 0)
				fmt.Printf("Detector ready with %d signatures. Database is valid.\n",
					det.Database().Size())
			}
			return nil
		},
	}
	cmd.Flags().Bool("no-test", false, "skip the detector validation step")
	return cmd
}

func defineDBMergeCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "merge <file1|default> <file2> <output>",
		Short:        "Merge two signature database files",
		Long:         `Merges two databases: every signature of the first is kept, and signatures of the second are appended unless an entry with the same pattern and offset already exists. Pass "default" as the first file to merge on top of the built-in catalog.`,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			db1, err := loadOrDefault(args[0])
			if err != nil {
				return err
			}
			db2, _, err := sigjson.Load(args[1])
			if err != nil {
				return err
			}

			merged := magic.Merge(db1, db2)
			if err := sigjson.Save(args[2], merged); err != nil {
				return err
			}

			fmt.Printf("Merged %d + %d signatures into %d unique entries: %s\n",
				db1.Size(), db2.Size(), merged.Size(), args[2])
			return nil
		},
	}
}

func defineDBListCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "list [file]",
		Short:        "List all signatures of a database (built-in if no file is given)",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var db *magic.Database
			if len(args) == 1 {
				loaded, skipped, err := sigjson.Load(args[0])
				if err != nil {
					return err
				}
				if skipped > 0 {
					fmt.Printf("Skipped %d invalid signature entries\n", skipped)
				}
				db = loaded
			} else {
				db = magic.DefaultDatabase()
			}

			fmt.Printf("Total Signatures: %d\n", db.Size())
			fmt.Printf("File Extensions: %d\n\n", len(db.Extensions()))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "EXT\tSIGNATURE\tOFFSET\tDESCRIPTION\tMIME")
			for _, ext := range db.Extensions() {
				for _, sig := range db.SignaturesFor(ext) {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
						sig.Extension,
						sigjson.FormatHex(sig.Pattern),
						sig.Offset,
						sig.Description,
						sig.MIMEType,
					)
				}
			}
			return w.Flush()
		},
	}
}

func defineDBExampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "example [output]",
		Short:        "Create an example custom database file",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := "custom_signatures.json"
			if len(args) == 1 {
				out = args[0]
			}
			if err := os.WriteFile(out, []byte(sigjson.ExampleDocument), 0644); err != nil {
				return err
			}
			fmt.Printf("Example database created: %s\n", out)
			fmt.Println("You can edit this file to add your own signatures.")
			return nil
		},
	}
}

func defineDBSourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "sources",
		Short:        "Show curated signature sources",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Curated signature references (manual JSON conversion only):")
			fmt.Println()
			for _, src := range sigjson.Sources {
				fmt.Printf("%s\n", src.Name)
				fmt.Printf("  ID: %s\n", src.ID)
				fmt.Printf("  URL: %s\n", src.URL)
				fmt.Printf("  Format: %s\n\n", src.Format)
			}
			fmt.Println("Recommended workflow:")
			fmt.Printf("  1. Export the default database: %s db export my_db.json\n", AppName)
			fmt.Println("  2. Edit the JSON file to add custom signatures")
			fmt.Printf("  3. Use it for detection: %s analyze --db my_db.json <file>\n", AppName)
			return nil
		},
	}
}

func loadOrDefault(path string) (*magic.Database, error) {
	if path == "default" {
		return magic.DefaultDatabase(), nil
	}
	db, _, err := sigjson.Load(path)
	return db, err
}
