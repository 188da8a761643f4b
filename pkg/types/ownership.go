package types

import "strings"

// OwnershipType names the relationship between an owner and an entity
type OwnershipType string

const (
	OwnershipTypeDataOwner      OwnershipType = "DATAOWNER"
	OwnershipTypeStakeholder    OwnershipType = "STAKEHOLDER"
	OwnershipTypeDelegate       OwnershipType = "DELEGATE"
	OwnershipTypeProducer       OwnershipType = "PRODUCER"
	OwnershipTypeConsumer       OwnershipType = "CONSUMER"
	OwnershipTypeTechnicalOwner OwnershipType = "TECHNICAL_OWNER"
)

// OwnershipTypes lists every supported ownership type name
func OwnershipTypes() []OwnershipType {
	return []OwnershipType{
		OwnershipTypeDataOwner,
		OwnershipTypeStakeholder,
		OwnershipTypeDelegate,
		OwnershipTypeProducer,
		OwnershipTypeConsumer,
		OwnershipTypeTechnicalOwner,
	}
}

// ParseOwnershipType resolves name against the supported ownership types.
// The second return is false for unrecognized names; callers fall back to
// DATAOWNER rather than dropping the owner.
func ParseOwnershipType(name string) (OwnershipType, bool) {
	for _, t := range OwnershipTypes() {
		if string(t) == name {
			return t, true
		}
	}
	return OwnershipTypeDataOwner, false
}

// CorpUserURN derives the corpuser urn for an owner name extracted from
// documentation, e.g. "Jane Smith" -> "urn:li:corpuser:jane_smith"
func CorpUserURN(name string) string {
	return "urn:li:corpuser:" + CorpUserID(name)
}

// CorpUserID returns the corpuser id portion of the urn for an owner name
func CorpUserID(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
