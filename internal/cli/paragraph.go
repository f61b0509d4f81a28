package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docxkit/docxkit/pkg/docx"
)

var (
	paragraphOutput string
	paragraphStyle  string
	paragraphFlag   string
	paragraphBefore int
	paragraphAlign  string
)

func newParagraphCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paragraph input_file text",
		Short: "Add a paragraph to a document",
		Long: `Paragraph appends a paragraph of text to the document. With --before it
inserts at the given paragraph index instead, and with --flag it inserts
before the first paragraph whose whole text equals the flag.`,
		Args: cobra.ExactArgs(2),
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
			text := args[1]

			var p docx.Paragraph
			switch {
			case paragraphFlag != "":
				dec := docx.NewDecorator(doc)
				p, _, err = dec.AddParagraphBeforeFlag(text, paragraphFlag)
			case paragraphBefore >= 0:
				p, err = doc.InsertParagraphBefore(text, paragraphBefore, paragraphStyle)
			default:
				p, err = doc.AddParagraph(text, paragraphStyle)
			}
			if err != nil {
				return err
			}

			if paragraphFlag != "" && paragraphStyle != "" {
				if err := docx.SetParagraphStyle(p, paragraphStyle); err != nil {
					return err
				}
			}
			if paragraphAlign != "" {
				docx.SetParagraphAlignment(p, docx.Alignment(paragraphAlign))
			}

			out := paragraphOutput
			if out == "" {
				out = args[0]
			}
			if err := doc.Save(out); err != nil {
				return err
			}
			fmt.Printf("Added paragraph, saved to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&paragraphOutput, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().StringVar(&paragraphStyle, "style", "", "paragraph style name, e.g. \"Heading 1\"")
	cmd.Flags().StringVar(&paragraphFlag, "flag", "", "insert before the paragraph with this exact text")
	cmd.Flags().IntVar(&paragraphBefore, "before", -1, "insert before this paragraph index")
	cmd.Flags().StringVar(&paragraphAlign, "align", "", "alignment: left, center or right")
	return cmd
}
