package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/config"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/registry"
)

var validateCmd = &cobra.Command{
	Use:   "validate <recipe>",
	Short: "Validate a transformer recipe",
	Long: `Validate loads a recipe file and checks it without running anything:
the transformer type must be registered, the key-value pattern must compile
with exactly two capturing groups, and every key mapping must name a known
metadata type.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipe, err := config.LoadRecipe(args[0])
		if err != nil {
			return err
		}

		factory, err := registry.GetTransformerFactory(recipe.Transformer.Type)
		if err != nil {
			return err
		}
		if _, err := factory(recipe.Transformer.Config, nil); err != nil {
			return err
		}

		pterm.Success.Printfln("recipe %s is valid (%s)", args[0], recipe.Transformer.Type)
		return nil
	},
}
