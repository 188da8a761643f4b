// Package transform wires the extractor, aspect builder and emitter into
// the documentation-to-metadata transformer.
package transform

import (
	"github.com/rs/zerolog"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/aspects"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/config"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/emit"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/extract"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/logging"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

// TransformerName is the type name recipes use to select this transformer
const TransformerName = "documentation_to_metadata"

// supportedEntityTypes are the entity kinds that can carry documentation
// this transformer parses. Anything else passes through untouched.
var supportedEntityTypes = []types.EntityType{
	types.EntityTypeDataset,
	types.EntityTypeContainer,
	types.EntityTypeDataFlow,
	types.EntityTypeDataJob,
	types.EntityTypeChart,
	types.EntityTypeDashboard,
}

// Transformer extracts key-value pairs from entity documentation and emits
// change proposals for the mapped metadata. It keeps no per-entity state
// between Transform calls; concurrent calls on distinct entities are safe
// as long as the AspectStore is.
type Transformer struct {
	cfg       config.Config
	extractor *extract.Extractor
	builder   *aspects.Builder
	emitter   *emit.Emitter
	report    *Report
	logger    zerolog.Logger
}

// New builds a transformer from a validated recipe. The store is consulted
// for PATCH merges and may be nil when semantics is OVERWRITE.
func New(cfg config.Config, store types.AspectStore) (*Transformer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	extractor, err := extract.New(cfg.KeyValuePattern)
	if err != nil {
		return nil, err
	}

	return &Transformer{
		cfg:       cfg,
		extractor: extractor,
		builder:   aspects.NewBuilder(),
		emitter:   emit.New(cfg.Semantics, store),
		report:    &Report{},
		logger:    logging.GetLogger("transform"),
	}, nil
}

// Name returns the registered transformer name
func (t *Transformer) Name() string {
	return TransformerName
}

// EntityTypes returns the entity types this transformer applies to
func (t *Transformer) EntityTypes() []types.EntityType {
	out := make([]types.EntityType, len(supportedEntityTypes))
	copy(out, supportedEntityTypes)
	return out
}

// Transform runs one entity through the pipeline. Unsupported entity types
// and entities without documentation yield zero proposals; neither is an
// error. The error return is reserved for the types.Transformer contract
// and is always nil here: per-aspect failures are logged and absorbed.
func (t *Transformer) Transform(entity types.Entity) ([]types.ChangeProposal, error) {
	t.report.entitySeen()

	if !t.supports(entity.Type) {
		t.logger.Debug().
			Str("entity", entity.URN).
			Str("entityType", string(entity.Type)).
			Msg("unsupported entity type, passing through")
		t.report.entityBypassed()
		return nil, nil
	}

	doc := entity.Field(t.cfg.DocumentationField)
	if doc == "" {
		t.logger.Debug().
			Str("entity", entity.URN).
			Str("field", t.cfg.DocumentationField).
			Msg("no documentation on entity")
		return nil, nil
	}

	pairs := t.extractor.Extract(doc)
	t.report.pairsExtracted(len(pairs))
	t.logger.Info().
		Str("entity", entity.URN).
		Int("pairs", len(pairs)).
		Msg("extracted key-value pairs")

	acc := t.builder.Build(entity.URN, pairs, t.cfg.KeyMappings)
	t.report.rulesMissed(acc.Misses)
	if acc.Empty() {
		return nil, nil
	}

	proposals := t.emitter.Emit(entity.URN, acc)
	t.report.proposalsEmitted(proposals)
	return proposals, nil
}

// TransformAll is a convenience for batch callers: entities are processed
// one at a time in order, each with fresh per-entity state.
func (t *Transformer) TransformAll(entities []types.Entity) []types.ChangeProposal {
	var out []types.ChangeProposal
	for _, entity := range entities {
		proposals, err := t.Transform(entity)
		if err != nil {
			// Transform absorbs per-aspect failures; this path guards the
			// interface contract only.
			t.logger.Error().Err(err).Str("entity", entity.URN).Msg("failed to transform entity")
			continue
		}
		out = append(out, proposals...)
	}
	return out
}

// Report returns a snapshot of the run counters
func (t *Transformer) Report() ReportSnapshot {
	return t.report.snapshot()
}

func (t *Transformer) supports(entityType types.EntityType) bool {
	for _, supported := range supportedEntityTypes {
		if entityType == supported {
			return true
		}
	}
	return false
}
