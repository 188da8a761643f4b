package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/errors"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/extract"
)

var extractPattern string

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Show the key-value pairs a pattern finds in a text file",
	Long: `Extract runs the key-value pattern over a plain text file and prints
the pairs it finds. Useful for debugging a recipe's pattern against real
documentation before wiring it into an ingestion run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", args[0])
		}

		extractor, err := extract.New(extractPattern)
		if err != nil {
			return err
		}

		pairs := extractor.Extract(string(data))
		if len(pairs) == 0 {
			pterm.Info.Println("no key-value pairs found")
			return nil
		}

		rows := pterm.TableData{{"Key", "Value"}}
		for _, pair := range pairs {
			rows = append(rows, []string{pair.Key, pair.Value})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractPattern, "pattern", "p", extract.DefaultPattern,
		"Key-value pattern with two capturing groups")
}
