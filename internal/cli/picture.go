package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docxkit/docxkit/pkg/docx"
)

var (
	pictureOutput   string
	pictureAtText   string
	pictureWidthCm  float64
	pictureHeightCm float64
)

func newPictureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "picture input_file image_file",
		Short: "Insert a picture into a document",
		Long: `Picture appends the image in a new paragraph at the end of the body.
With --at-text it instead replaces the first run whose text matches
exactly; when no run matches, the document is left untouched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
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

			opts := docx.PictureOptions{
				WidthCm:  pictureWidthCm,
				HeightCm: pictureHeightCm,
			}
			if opts.WidthCm == 0 {
				opts.WidthCm = cfg.DefaultImageWidthCm
			}

			if pictureAtText != "" {
				found, err := doc.AddPictureAtText(pictureAtText, args[1], opts)
				if err != nil {
					return err
				}
				if !found {
					fmt.Printf("No run matches %q, nothing inserted\n", pictureAtText)
					return nil
				}
			} else {
				if _, err := doc.AddPicture(args[1], opts); err != nil {
					return err
				}
			}

			out := pictureOutput
			if out == "" {
				out = args[0]
			}
			if err := doc.Save(out); err != nil {
				return err
			}
			fmt.Printf("Inserted %s, saved to %s\n", args[1], out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pictureOutput, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().StringVar(&pictureAtText, "at-text", "", "replace the run with this exact text")
	cmd.Flags().Float64Var(&pictureWidthCm, "width", 0, "display width in cm")
	cmd.Flags().Float64Var(&pictureHeightCm, "height", 0, "display height in cm (default: keep aspect ratio)")
	return cmd
}
