package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/docxkit/docxkit/pkg/docx"
)

var replaceOutput string

func newReplaceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace input_file old=new [old=new ...]",
		Short: "Replace placeholder text in every run",
		Long: `Replace applies the given old=new substitutions, in order, to every
text run in the document, including runs inside table cells.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			reps, err := parseReplacements(args[1:])
			if err != nil {
				return err
			}

			doc, err := docx.Open(args[0])
			if err != nil {
				return err
			}
			doc.SetLogger(log)

			dec := docx.NewDecorator(doc)
			n := dec.Replace(reps)

			out := replaceOutput
			if out == "" {
				out = args[0]
			}
			if err := doc.Save(out); err != nil {
				return err
			}

			log.Info("replaced text",
				zap.Int("runs", n),
				zap.String("output", out))
			fmt.Printf("Modified %d run(s), saved to %s\n", n, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&replaceOutput, "output", "o", "", "output file (default: overwrite input)")
	return cmd
}

func parseReplacements(pairs []string) ([]docx.Replacement, error) {
	reps := make([]docx.Replacement, 0, len(pairs))
	for _, pair := range pairs {
		old, repl, ok := strings.Cut(pair, "=")
		if !ok || old == "" {
			return nil, fmt.Errorf("invalid replacement %q, expected old=new", pair)
		}
		reps = append(reps, docx.Replacement{Old: old, New: repl})
	}
	return reps, nil
}
