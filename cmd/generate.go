package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/clems4ever/xcursorgen/xcursor"
	"github.com/spf13/cobra"
)

var (
	prefix       string
	maxDimension uint32
	resize       bool
	configFormat string
)

var generateCmd = &cobra.Command{
	Use:   "generate [config] [output]",
	Short: "Generate an Xcursor file from a frame list",
	Long: `Generate reads the frame list in config and writes the cursor to output.
Either may be "-" or omitted to use standard input and standard output.
When output is a file it is replaced atomically, so a failed run never
leaves a partial cursor behind.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, outputPath := "-", "-"
		if len(args) > 0 {
			configPath = args[0]
		}
		if len(args) > 1 {
			outputPath = args[1]
		}

		list, err := readFrameList(cmd.InOrStdin(), configPath)
		if err != nil {
			return err
		}

		conv := &xcursor.Converter{
			Loader:    xcursor.Loader{Prefix: prefix, Resize: resize},
			Validator: xcursor.Validator{MaxDimension: maxDimension},
			Logger:    newLogger(),
		}
		if outputPath == "-" {
			return conv.Convert(list, cmd.OutOrStdout())
		}
		return conv.ConvertFile(list, outputPath)
	},
}

func readFrameList(stdin io.Reader, path string) (*xcursor.FrameList, error) {
	switch {
	case path == "-" && configFormat == "yaml":
		return xcursor.ParseYAMLConfig(stdin, "<stdin>")
	case path == "-":
		return xcursor.ParseConfig(stdin, "<stdin>")
	}

	switch configFormat {
	case "auto":
		return xcursor.LoadConfig(path)
	case "lines", "yaml":
		return loadWithFormat(path, configFormat)
	default:
		return nil, fmt.Errorf("unknown config format %q", configFormat)
	}
}

func loadWithFormat(path, format string) (*xcursor.FrameList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &xcursor.ConfigError{Path: path, Err: err}
	}
	defer f.Close()

	if format == "yaml" {
		return xcursor.ParseYAMLConfig(f, path)
	}
	return xcursor.ParseConfig(f, path)
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Directory to resolve image paths against")
	generateCmd.Flags().Uint32Var(&maxDimension, "max-size", xcursor.DefaultMaxDimension, "Largest accepted image width or height")
	generateCmd.Flags().BoolVar(&resize, "resize", false, "Scale each image to its nominal size")
	generateCmd.Flags().StringVarP(&configFormat, "format", "f", "auto", "Config format: auto, lines or yaml")
}
