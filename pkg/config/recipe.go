package config

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/errors"
)

// Recipe is the outer ingestion recipe: it names a transformer type and
// carries its config as a generic map, which the matching factory parses
// and validates.
type Recipe struct {
	Transformer struct {
		Type   string                 `koanf:"type"`
		Config map[string]interface{} `koanf:"config"`
	} `koanf:"transformer"`
}

// LoadRecipe reads a recipe file (yaml or toml, chosen by extension).
// The transformer config is left generic for the factory to interpret.
func LoadRecipe(path string) (Recipe, error) {
	k := koanf.New(".")

	parser, err := parserFor(path)
	if err != nil {
		return Recipe{}, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return Recipe{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load recipe from %s", path)
	}

	var recipe Recipe
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &recipe,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &recipe, unmarshalConf); err != nil {
		return Recipe{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to unmarshal recipe %s", path)
	}

	if recipe.Transformer.Type == "" {
		return Recipe{}, errors.Newf(errors.ErrConfigValid, "recipe %s: transformer.type is required", path)
	}

	return recipe, nil
}
