package types

// MetadataType selects the metadata shape a documentation key maps to.
// The set is closed: the aspect builder switches over it exhaustively, so
// adding a type means adding a builder case.
type MetadataType string

const (
	MetadataTypeCustomProperty MetadataType = "custom_property"
	MetadataTypeTag            MetadataType = "tag"
	MetadataTypeGlossaryTerm   MetadataType = "glossary_term"
	MetadataTypeOwner          MetadataType = "owner"
)

// IsValid reports whether t is one of the known metadata types
func (t MetadataType) IsValid() bool {
	switch t {
	case MetadataTypeCustomProperty, MetadataTypeTag, MetadataTypeGlossaryTerm, MetadataTypeOwner:
		return true
	}
	return false
}

// KeyMapping binds one documentation key to a metadata target. Matching
// against extracted keys is case-insensitive; TargetName is interpreted per
// MetadataType (property name, tag urn, glossary term urn, or ownership
// type name).
type KeyMapping struct {
	KeyName      string       `koanf:"key_name" json:"key_name" yaml:"key_name"`
	MetadataType MetadataType `koanf:"metadata_type" json:"metadata_type" yaml:"metadata_type"`
	TargetName   string       `koanf:"target_name" json:"target_name" yaml:"target_name"`
	Description  string       `koanf:"description" json:"description,omitempty" yaml:"description,omitempty"`
}
