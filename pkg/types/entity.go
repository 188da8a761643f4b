package types

// EntityType identifies the kind of catalogued asset an entity represents
type EntityType string

const (
	EntityTypeDataset   EntityType = "dataset"
	EntityTypeContainer EntityType = "container"
	EntityTypeDataFlow  EntityType = "dataFlow"
	EntityTypeDataJob   EntityType = "dataJob"
	EntityTypeChart     EntityType = "chart"
	EntityTypeDashboard EntityType = "dashboard"
)

// Entity is the host pipeline's view of a catalogued asset: its urn, its
// type tag, and the field values the transformer may read (including the
// configured documentation field).
type Entity struct {
	URN    string            `json:"urn" yaml:"urn"`
	Type   EntityType        `json:"type" yaml:"type"`
	Fields map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Field returns the named field value, or "" when absent
func (e Entity) Field(name string) string {
	if e.Fields == nil {
		return ""
	}
	return e.Fields[name]
}
