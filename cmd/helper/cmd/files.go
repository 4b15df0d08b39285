package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/cobra"

	herror "github.com/msto63/helper/foundation/core/error"
	"github.com/msto63/helper/foundation/utils/filex"
)

func newFilesCmd(a *app) *cobra.Command {
	filesCmd := &cobra.Command{
		Use:   "files",
		Short: "Inspect directories and data files",
	}
	filesCmd.AddCommand(
		newFilesTreeCmd(a),
		newFilesJSONCmd(),
		newFilesCSVCmd(a),
		newFilesSheetsCmd(a),
	)
	return filesCmd
}

func newFilesTreeCmd(a *app) *cobra.Command {
	var recursive bool

	treeCmd := &cobra.Command{
		Use:   "tree <dir>",
		Short: "List the directories and files below dir, skipping hidden names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := filex.DirectSubpaths
			if recursive {
				list = filex.AllSubpaths
			}
			paths, err := list(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, paths, func(w io.Writer) {
				for _, dir := range paths.Directories {
					fmt.Fprintln(w, DirStyle.Render(dir+string(filepath.Separator)))
				}
				for _, file := range paths.Files {
					fmt.Fprintln(w, file)
				}
				fmt.Fprintln(w, MutedStyle.Render(fmt.Sprintf("%d directories, %d files", len(paths.Directories), len(paths.Files))))
			})
		},
	}
	treeCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into subdirectories")
	return treeCmd
}

func newFilesJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json <file>",
		Short: "Read a JSON object and print it formatted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := filex.ReadJSONMapWithOptions(args[0], filex.JSONOptions{UseNumber: true})
			if err != nil {
				return err
			}
			if m == nil {
				m = map[string]interface{}{}
			}
			return printJSON(cmd.OutOrStdout(), m)
		},
	}
}

func newFilesCSVCmd(a *app) *cobra.Command {
	var (
		headers bool
		comma   string
	)

	csvCmd := &cobra.Command{
		Use:   "csv <file>",
		Short: "Read a CSV file and print it as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := filex.CSVOptions{HasHeaders: headers, TrimLeadingSpace: true}
			if comma != "" {
				r, size := utf8.DecodeRuneInString(comma)
				if size != len(comma) {
					return herror.Newf("--comma must be a single character, got %q", comma).
						WithCode(herror.CodeInvalidInput).
						WithOperation("cmd.files.csv")
				}
				opts.Comma = r
			}

			table, err := filex.ReadCSV(args[0], opts)
			if err != nil {
				return err
			}
			var out interface{} = table.Rows
			if headers {
				out = table.Records()
			}
			return a.print(cmd, out, func(w io.Writer) {
				fmt.Fprintln(w, renderTable(table.Headers, table.Rows))
			})
		},
	}
	csvCmd.Flags().BoolVar(&headers, "headers", false, "treat the first row as headers")
	csvCmd.Flags().StringVar(&comma, "comma", "", "field delimiter (default ,)")
	return csvCmd
}

func newFilesSheetsCmd(a *app) *cobra.Command {
	var sheet string

	sheetsCmd := &cobra.Command{
		Use:   "sheets <file>",
		Short: "List the sheets of an Excel workbook or print one of them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := filex.OpenWorkbook(args[0])
			if err != nil {
				return err
			}
			defer wb.Close()

			if sheet == "" {
				sheets := wb.Sheets()
				return a.print(cmd, sheets, func(w io.Writer) {
					for _, name := range sheets {
						fmt.Fprintln(w, name)
					}
				})
			}

			rows, err := wb.Rows(sheet)
			if err != nil {
				return err
			}
			return a.print(cmd, rows, func(w io.Writer) {
				fmt.Fprintln(w, TitleStyle.Render(sheet))
				fmt.Fprintln(w, renderTable(nil, rows))
			})
		},
	}
	sheetsCmd.Flags().StringVar(&sheet, "sheet", "", "print the rows of this sheet")
	return sheetsCmd
}
