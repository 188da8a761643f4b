package types

// Semantics controls how an emitted aspect payload combines with the
// entity's existing aspect state
type Semantics string

const (
	// SemanticsPatch merges the payload into existing aspect state,
	// new entries winning on collision
	SemanticsPatch Semantics = "PATCH"
	// SemanticsOverwrite replaces existing aspect state entirely
	SemanticsOverwrite Semantics = "OVERWRITE"
)

// IsValid reports whether s is a known semantics value
func (s Semantics) IsValid() bool {
	return s == SemanticsPatch || s == SemanticsOverwrite
}

// SystemMetadata carries bookkeeping attached to every proposal in a run
type SystemMetadata struct {
	RunID        string `json:"runId,omitempty" yaml:"runId,omitempty"`
	LastObserved int64  `json:"lastObserved,omitempty" yaml:"lastObserved,omitempty"`
}

// ChangeProposal describes one aspect update for one entity. Proposals are
// handed to the host aggregation pipeline for application and are not
// retained by the transformer.
type ChangeProposal struct {
	EntityURN      string          `json:"entityUrn" yaml:"entityUrn"`
	Aspect         AspectName      `json:"aspectName" yaml:"aspectName"`
	Semantics      Semantics       `json:"semantics" yaml:"semantics"`
	Payload        Aspect          `json:"aspect" yaml:"aspect"`
	SystemMetadata *SystemMetadata `json:"systemMetadata,omitempty" yaml:"systemMetadata,omitempty"`
}

// AspectStore is the host pipeline's view of persisted aspect state,
// consulted for PATCH merges. The bool return distinguishes "no aspect"
// from lookup failure.
type AspectStore interface {
	GetAspect(entityURN string, name AspectName) (Aspect, bool, error)
}

// Transformer is one configurable ingestion transform step
type Transformer interface {
	// Name returns the registered transformer name
	Name() string
	// EntityTypes returns the entity types the transformer applies to
	EntityTypes() []EntityType
	// Transform produces change proposals for one entity. Entities outside
	// EntityTypes pass through with zero proposals.
	Transform(entity Entity) ([]ChangeProposal, error)
}

// TransformerFactory builds a transformer from generic recipe config.
// The store may be nil when PATCH semantics are not in use.
type TransformerFactory func(config map[string]interface{}, store AspectStore) (Transformer, error)
