package aspects

import "github.com/brock-acryl/datahub-documentation-transformer/pkg/types"

// OwnerUser is a user entity synthesized for an owner value found in
// documentation. The display name is the raw extracted value.
type OwnerUser struct {
	URN         string
	DisplayName string
}

// Accumulators collects the metadata produced from one entity's
// documentation during a single transformation pass. One instance is
// allocated per entity and never shared or reused.
type Accumulators struct {
	// Properties maps property name to value; a later pair with the same
	// target overwrites an earlier one within the pass.
	Properties map[string]string

	// Tags, Terms and Owners are ordered sets: first-seen order is kept,
	// duplicates are dropped.
	Tags   []types.TagAssociation
	Terms  []types.TermAssociation
	Owners []types.Owner

	// Users carries the user entities synthesized for owner values
	Users []OwnerUser

	// Misses counts pairs whose key resolved to no mapping in this pass
	Misses int

	tagSeen   map[string]bool
	termSeen  map[string]bool
	ownerSeen map[string]bool
	userSeen  map[string]bool
}

// NewAccumulators returns empty accumulators for one entity pass
func NewAccumulators() *Accumulators {
	return &Accumulators{
		Properties: make(map[string]string),
		tagSeen:    make(map[string]bool),
		termSeen:   make(map[string]bool),
		ownerSeen:  make(map[string]bool),
		userSeen:   make(map[string]bool),
	}
}

// SetProperty records a custom property, overwriting any earlier value for
// the same name in this pass
func (a *Accumulators) SetProperty(name, value string) {
	a.Properties[name] = value
}

// AddTag records a tag association once per tag urn
func (a *Accumulators) AddTag(tagURN string) {
	if a.tagSeen[tagURN] {
		return
	}
	a.tagSeen[tagURN] = true
	a.Tags = append(a.Tags, types.TagAssociation{Tag: tagURN})
}

// AddTerm records a glossary term association once per term urn
func (a *Accumulators) AddTerm(termURN string) {
	if a.termSeen[termURN] {
		return
	}
	a.termSeen[termURN] = true
	a.Terms = append(a.Terms, types.TermAssociation{Term: termURN})
}

// AddOwner records an ownership record once per (owner, type) pair
func (a *Accumulators) AddOwner(owner types.Owner) {
	key := owner.Owner + "\x00" + string(owner.Type)
	if a.ownerSeen[key] {
		return
	}
	a.ownerSeen[key] = true
	a.Owners = append(a.Owners, owner)
}

// AddUser records a synthesized user entity once per urn
func (a *Accumulators) AddUser(user OwnerUser) {
	if a.userSeen[user.URN] {
		return
	}
	a.userSeen[user.URN] = true
	a.Users = append(a.Users, user)
}

// Empty reports whether the pass produced no metadata at all
func (a *Accumulators) Empty() bool {
	return len(a.Properties) == 0 && len(a.Tags) == 0 && len(a.Terms) == 0 && len(a.Owners) == 0
}
