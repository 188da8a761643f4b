// Package config loads and validates transformer recipes from files,
// environment variables, and generic config maps.
package config

import (
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/errors"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/extract"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/rules"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. DOC2META_DOCUMENTATION_FIELD
const EnvPrefix = "DOC2META_"

// Config is the documentation transformer recipe
type Config struct {
	// DocumentationField names the entity field holding the documentation
	// to parse
	DocumentationField string `koanf:"documentation_field"`

	// KeyValuePattern is the regex extracting key-value pairs; it must have
	// exactly two capturing groups (key, value)
	KeyValuePattern string `koanf:"key_value_pattern"`

	// Semantics selects PATCH or OVERWRITE handling of existing aspects
	Semantics types.Semantics `koanf:"semantics"`

	// KeyMappings is the ordered list of key to metadata-target rules
	KeyMappings []types.KeyMapping `koanf:"key_mappings"`
}

// Default returns the recipe defaults: parse the description field with the
// bullet-point pattern and merge into existing aspects.
func Default() Config {
	return Config{
		DocumentationField: "description",
		KeyValuePattern:    extract.DefaultPattern,
		Semantics:          types.SemanticsPatch,
	}
}

// Load reads a recipe file (yaml or toml, chosen by extension), applies
// environment overrides, and validates the result
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	parser, err := parserFor(path)
	if err != nil {
		return Config{}, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load recipe from %s", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env overrides")
	}

	return unmarshal(k)
}

// FromMap builds a validated recipe from a generic config map, as handed to
// a transformer factory by the host pipeline
func FromMap(m map[string]interface{}) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}
	if m != nil {
		if err := k.Load(confmap.Provider(m, "."), nil); err != nil {
			return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load config map")
		}
	}

	return unmarshal(k)
}

// Validate rejects recipes that would misbehave mid-run: a pattern that
// does not compile or lacks the two capturing groups, unknown metadata
// types, and unknown semantics.
func (c Config) Validate() error {
	if c.DocumentationField == "" {
		return errors.New(errors.ErrConfigValid, "documentation_field cannot be empty")
	}
	if !c.Semantics.IsValid() {
		return errors.Newf(errors.ErrConfigValid,
			"semantics must be %s or %s, got %q",
			types.SemanticsPatch, types.SemanticsOverwrite, c.Semantics)
	}

	ex, err := extract.New(c.KeyValuePattern)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "key_value_pattern does not compile")
	}
	if got := ex.GroupCount(); got != 2 {
		return errors.Newf(errors.ErrConfigValid,
			"key_value_pattern must have exactly 2 capturing groups, got %d", got)
	}

	return rules.ValidateMappings(c.KeyMappings)
}

func defaultsMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"documentation_field": d.DocumentationField,
		"key_value_pattern":   d.KeyValuePattern,
		"semantics":           string(d.Semantics),
	}
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	case ".toml":
		return ktoml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad,
			"unsupported recipe format %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

func unmarshal(k *koanf.Koanf) (Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal recipe")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
