// Command pnmdump converts, transforms and inspects PGM grayscale images.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gpurvis94/pnmdump"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pnmdump: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pnmdump",
		Short:         "PGM image converter and hex dump tool",
		Version:       "1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newConvertCmd("p2top5", "Convert an ASCII (P2) image to binary (P5)", pnmdump.Options{
			InputFormat:  pnmdump.FormatASCII,
			OutputFormat: pnmdump.FormatBinary,
		}),
		newConvertCmd("p5top2", "Convert a binary (P5) image to ASCII (P2)", pnmdump.Options{
			InputFormat:  pnmdump.FormatBinary,
			OutputFormat: pnmdump.FormatASCII,
		}),
		newConvertCmd("rotate", "Reflect an image in its main diagonal", pnmdump.Options{
			Op: pnmdump.OpTranspose,
		}),
		newConvertCmd("rotate90", "Rotate an image 90 degrees clockwise", pnmdump.Options{
			Op: pnmdump.OpRotate90,
		}),
		newScaleCmd("scale-nn", "Resize an image with nearest-neighbor sampling", pnmdump.OpScaleNearest),
		newScaleCmd("scale-bl", "Resize an image with bilinear interpolation", pnmdump.OpScaleBilinear),
		newHexDumpCmd(),
	)
	return root
}

func newConvertCmd(name, short string, opts pnmdump.Options) *cobra.Command {
	return &cobra.Command{
		Use:   name + " INFILE OUTFILE",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return pnmdump.ConvertFile(args[0], args[1], opts, nil)
		},
	}
}

func newScaleCmd(name, short string, op pnmdump.Op) *cobra.Command {
	return &cobra.Command{
		Use:   name + " SCALAR INFILE OUTFILE",
		Short: short,
		Long: short + `.

SCALAR accepts a factor ("2"), a ratio ("1/2"), per-axis factors
("2x3") or per-axis ratios ("3/2x4/3"), optionally prefixed with an
interpolation hint letter. Both axes must scale in the same direction.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pnmdump.Options{Op: op, Scale: args[0]}
			return pnmdump.ConvertFile(args[1], args[2], opts, nil)
		},
	}
}

func newHexDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hexdump [FILE]",
		Short: "Print a hex and ASCII listing of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return pnmdump.HexDump(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			f, err := pnmdump.Open(args[0], nil)
			if err != nil {
				return err
			}
			defer f.Close()
			return pnmdump.HexDump(f, cmd.OutOrStdout())
		},
	}
}
