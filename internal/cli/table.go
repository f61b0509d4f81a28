package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/docxkit/docxkit/pkg/docx"
)

var (
	tableOutput string
	tableIndex  int
	tableCols   int
	tableStyle  string
)

func newTableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Create tables and append rows",
	}
	cmd.AddCommand(newTableCreateCommand())
	cmd.AddCommand(newTableAppendCommand())
	return cmd
}

func newTableCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create input_file cell [cell ...]",
		Short: "Append a new table filled row by row",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			data := args[1:]
			if tableCols <= 0 {
				return fmt.Errorf("--cols must be positive")
			}
			if len(data)%tableCols != 0 {
				return fmt.Errorf("%d cell(s) do not fill rows of %d", len(data), tableCols)
			}

			doc, err := docx.Open(args[0])
			if err != nil {
				return err
			}
			doc.SetLogger(log)

			style := tableStyle
			if style == "" {
				style = cfg.DefaultTableStyle
			}
			tbl, err := doc.BuildTable(len(data)/tableCols, tableCols, data, style)
			if err != nil {
				return err
			}

			out := tableOutput
			if out == "" {
				out = args[0]
			}
			if err := doc.Save(out); err != nil {
				return err
			}

			log.Info("created table",
				zap.Int("rows", tbl.RowCount()),
				zap.Int("cols", tbl.ColumnCount()))
			fmt.Printf("Created %dx%d table, saved to %s\n", tbl.RowCount(), tbl.ColumnCount(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tableOutput, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().IntVar(&tableCols, "cols", 0, "number of columns")
	cmd.Flags().StringVar(&tableStyle, "style", "", "table style name")
	return cmd
}

func newTableAppendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "append input_file cell [cell ...]",
		Short: "Append rows to an existing table",
		Long: `Append adds the given cell values to the table as whole rows. Values
that do not fill a complete final row are dropped.`,
		Args: cobra.MinimumNArgs(2),
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

			dec := docx.NewDecorator(doc)
			n, err := dec.AppendTableRows(tableIndex, args[1:])
			if err != nil {
				return err
			}

			out := tableOutput
			if out == "" {
				out = args[0]
			}
			if err := doc.Save(out); err != nil {
				return err
			}
			fmt.Printf("Appended %d row(s) to table %d, saved to %s\n", n, tableIndex, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tableOutput, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().IntVar(&tableIndex, "table", 0, "table index")
	return cmd
}
