package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/docxkit/docxkit/pkg/docx"
)

var (
	inspectJSON     bool
	inspectMarkdown bool
)

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect input_file",
		Short: "Show the structure of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			doc, err := docx.Open(args[0])
			if err != nil {
				return err
			}
			doc.SetLogger(log)

			if inspectMarkdown {
				md, err := doc.Markdown()
				if err != nil {
					return err
				}
				fmt.Print(md)
				return nil
			}

			s, err := doc.Structure()
			if err != nil {
				return err
			}

			if inspectJSON {
				out, err := json.MarshalIndent(s, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			printStructure(args[0], s)
			log.Debug("inspected document",
				zap.Int("paragraphs", len(s.Paragraphs)),
				zap.Int("tables", len(s.Tables)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&inspectJSON, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&inspectMarkdown, "markdown", false, "render the body as markdown")
	return cmd
}

func printStructure(path string, s *docx.DocumentStructure) {
	title := color.New(color.FgCyan, color.Bold)
	title.Printf("Document: %s\n", path)
	title.Println(strings.Repeat("=", 50))

	fmt.Printf("  Paragraphs: %d\n", len(s.Paragraphs))
	fmt.Printf("  Tables: %d\n", len(s.Tables))
	fmt.Println()

	for _, p := range s.Paragraphs {
		style := p.Style
		if style == "" {
			style = "-"
		}
		fmt.Printf("  [p %3d] %-12s %s\n", p.Index, style, truncate(p.Text, 60))
	}

	for _, t := range s.Tables {
		fmt.Printf("  [tbl %d] %dx%d", t.Index, t.Rows, t.Columns)
		if t.Style != "" {
			fmt.Printf(" (%s)", t.Style)
		}
		fmt.Println()
		for _, row := range t.Cells {
			fmt.Printf("      | %s |\n", strings.Join(row, " | "))
		}
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
