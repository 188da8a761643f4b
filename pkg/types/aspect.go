package types

// AspectName identifies a typed facet of an entity's metadata
type AspectName string

const (
	AspectCustomProperties     AspectName = "customProperties"
	AspectGlobalTags           AspectName = "globalTags"
	AspectGlossaryTerms        AspectName = "glossaryTerms"
	AspectOwnership            AspectName = "ownership"
	AspectCorpUserInfo         AspectName = "corpUserInfo"
	AspectCorpUserEditableInfo AspectName = "corpUserEditableInfo"
)

// Aspect is a metadata payload attached to an entity under an aspect name
type Aspect interface {
	AspectName() AspectName
}

// Properties carries free-form custom properties
type Properties struct {
	CustomProperties map[string]string `json:"customProperties" yaml:"customProperties"`
}

func (Properties) AspectName() AspectName { return AspectCustomProperties }

// TagAssociation associates one tag urn with an entity
type TagAssociation struct {
	Tag string `json:"tag" yaml:"tag"`
}

// GlobalTags carries the tag associations of an entity
type GlobalTags struct {
	Tags []TagAssociation `json:"tags" yaml:"tags"`
}

func (GlobalTags) AspectName() AspectName { return AspectGlobalTags }

// TermAssociation associates one glossary term urn with an entity.
// Unlike TagAssociation, the term serializes under "urn": that is the
// field name the glossaryTerms wire shape uses and downstream readers
// depend on, so do not rename it to "term".
type TermAssociation struct {
	Term string `json:"urn" yaml:"urn"`
}

// GlossaryTerms carries the glossary term associations of an entity
type GlossaryTerms struct {
	Terms []TermAssociation `json:"terms" yaml:"terms"`
}

func (GlossaryTerms) AspectName() AspectName { return AspectGlossaryTerms }

// Owner is one ownership record: who owns the entity and in what capacity
type Owner struct {
	Owner string        `json:"owner" yaml:"owner"`
	Type  OwnershipType `json:"type" yaml:"type"`
}

// Ownership carries the ownership records of an entity
type Ownership struct {
	Owners []Owner `json:"owners" yaml:"owners"`
}

func (Ownership) AspectName() AspectName { return AspectOwnership }

// CorpUserInfo describes a user entity synthesized for an extracted owner
type CorpUserInfo struct {
	Active      bool   `json:"active" yaml:"active"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	Email       string `json:"email" yaml:"email"`
	Title       string `json:"title" yaml:"title"`
}

func (CorpUserInfo) AspectName() AspectName { return AspectCorpUserInfo }

// CorpUserEditableInfo is the editable profile of a synthesized user
type CorpUserEditableInfo struct {
	DisplayName string `json:"displayName" yaml:"displayName"`
	Title       string `json:"title" yaml:"title"`
}

func (CorpUserEditableInfo) AspectName() AspectName { return AspectCorpUserEditableInfo }
