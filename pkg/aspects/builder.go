// Package aspects turns extracted key-value pairs into per-aspect
// accumulators according to the configured key mappings.
package aspects

import (
	"github.com/rs/zerolog"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/extract"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/logging"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/rules"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

// Builder dispatches extracted pairs to the accumulator matching their
// mapping's metadata type
type Builder struct {
	logger zerolog.Logger
}

// NewBuilder creates a new aspect builder
func NewBuilder() *Builder {
	return &Builder{
		logger: logging.GetLogger("aspects.builder"),
	}
}

// Build runs one transformation pass: each pair is resolved against the
// mappings and folded into fresh accumulators. Pairs without a mapping are
// dropped. The returned accumulators belong to this pass only.
func (b *Builder) Build(entityURN string, pairs []extract.Pair, mappings []types.KeyMapping) *Accumulators {
	acc := NewAccumulators()

	for _, pair := range pairs {
		mapping, ok := rules.Resolve(pair.Key, mappings)
		if !ok {
			acc.Misses++
			b.logger.Debug().
				Str("entity", entityURN).
				Str("key", pair.Key).
				Msg("no mapping configured for extracted key, dropping pair")
			continue
		}

		b.logger.Debug().
			Str("entity", entityURN).
			Str("key", pair.Key).
			Str("metadataType", string(mapping.MetadataType)).
			Str("target", mapping.TargetName).
			Msg("building metadata for pair")

		switch mapping.MetadataType {
		case types.MetadataTypeCustomProperty:
			acc.SetProperty(mapping.TargetName, pair.Value)

		case types.MetadataTypeTag:
			acc.AddTag(mapping.TargetName)

		case types.MetadataTypeGlossaryTerm:
			acc.AddTerm(mapping.TargetName)

		case types.MetadataTypeOwner:
			b.addOwner(entityURN, acc, pair, mapping)

		default:
			// ValidateMappings rejects unknown types at load time
			b.logger.Error().
				Str("entity", entityURN).
				Str("metadataType", string(mapping.MetadataType)).
				Msg("unknown metadata type in mapping, skipping pair")
		}
	}

	return acc
}

// addOwner records an ownership entry plus the synthesized user entity for
// the owner value. Unrecognized ownership type names fall back to
// DATAOWNER instead of dropping the owner.
func (b *Builder) addOwner(entityURN string, acc *Accumulators, pair extract.Pair, mapping types.KeyMapping) {
	ownershipType, known := types.ParseOwnershipType(mapping.TargetName)
	if !known {
		b.logger.Warn().
			Str("entity", entityURN).
			Str("key", pair.Key).
			Str("ownershipType", mapping.TargetName).
			Str("fallback", string(types.OwnershipTypeDataOwner)).
			Msg("invalid ownership type, using fallback")
	}

	ownerURN := types.CorpUserURN(pair.Value)
	acc.AddOwner(types.Owner{Owner: ownerURN, Type: ownershipType})
	acc.AddUser(OwnerUser{URN: ownerURN, DisplayName: pair.Value})
}
