package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/clems4ever/xcursorgen/xcursor"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [xcursor_file]",
	Short: "Print the table of contents of an Xcursor file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var decoded *xcursor.Decoded
		err := withFile(args[0], func(r io.Reader) error {
			var err error
			decoded, err = xcursor.Decode(r)
			return err
		})
		if err != nil {
			return err
		}
		printDecoded(cmd.OutOrStdout(), decoded)
		return nil
	},
}

func printDecoded(w io.Writer, d *xcursor.Decoded) {
	fmt.Fprintf(w, "version 0x%08x, %d toc entries\n", d.Version, len(d.TOC))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTYPE\tSIZE\tOFFSET")
	for i, e := range d.TOC {
		fmt.Fprintf(tw, "%d\t%#x\t%d\t%d\n", i, e.Type, e.Subtype, e.Position)
	}
	tw.Flush()

	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SIZE\tWIDTH\tHEIGHT\tXHOT\tYHOT\tDELAY")
	for _, c := range d.Chunks {
		img := c.Image
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\n", c.NominalSize, img.Width, img.Height, img.XHot, img.YHot, img.Delay)
	}
	tw.Flush()
}

func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return fn(f)
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
