package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/mapkit/internal/format"
)

var (
	wrapWidth int
	wrapParts int
)

var wrapCmd = &cobra.Command{
	Use:   "wrap [file]",
	Short: "Hard-wrap caption or legend text to a fixed width",
	Long: `Re-wraps text so no line exceeds the given width, preserving
paragraph breaks. With --parts, instead splits the text into that many
pieces near word boundaries, for balancing text across map insets.

Reads from the file argument, or stdin when omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readWrapInput(args)
		if err != nil {
			return err
		}

		if wrapParts > 0 {
			parts, err := format.SplitIntoN(text, wrapParts)
			if err != nil {
				return err
			}
			for i, p := range parts {
				if i > 0 {
					fmt.Println("---")
				}
				fmt.Println(p)
			}
			return nil
		}

		width := wrapWidth
		if width == 0 {
			width = cfg.Output.WrapWidth
		}
		fmt.Println(format.HardWrap(text, width))
		return nil
	},
}

func readWrapInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", eris.Wrap(err, "wrap: read stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", eris.Wrap(err, "wrap: read input")
	}
	return string(data), nil
}

func init() {
	wrapCmd.Flags().IntVar(&wrapWidth, "width", 0, "maximum line width (defaults to output.wrap_width)")
	wrapCmd.Flags().IntVar(&wrapParts, "parts", 0, "split into this many parts instead of wrapping")
	rootCmd.AddCommand(wrapCmd)
}
