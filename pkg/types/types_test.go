package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOwnershipType(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      OwnershipType
		wantKnown bool
	}{
		{"dataowner", "DATAOWNER", OwnershipTypeDataOwner, true},
		{"stakeholder", "STAKEHOLDER", OwnershipTypeStakeholder, true},
		{"delegate", "DELEGATE", OwnershipTypeDelegate, true},
		{"producer", "PRODUCER", OwnershipTypeProducer, true},
		{"consumer", "CONSUMER", OwnershipTypeConsumer, true},
		{"technical owner", "TECHNICAL_OWNER", OwnershipTypeTechnicalOwner, true},
		{"unknown falls back", "BOGUS_TYPE", OwnershipTypeDataOwner, false},
		{"lowercase is not recognized", "dataowner", OwnershipTypeDataOwner, false},
		{"empty", "", OwnershipTypeDataOwner, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := ParseOwnershipType(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantKnown, known)
		})
	}
}

func TestCorpUserURN(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple name", "Jane Smith", "urn:li:corpuser:jane_smith"},
		{"single word", "jane", "urn:li:corpuser:jane"},
		{"mixed case", "JANE SMITH", "urn:li:corpuser:jane_smith"},
		{"surrounding whitespace", "  Jane Smith  ", "urn:li:corpuser:jane_smith"},
		{"three parts", "Mary Jane Smith", "urn:li:corpuser:mary_jane_smith"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CorpUserURN(tt.input))
		})
	}
}

func TestMetadataTypeIsValid(t *testing.T) {
	assert.True(t, MetadataTypeCustomProperty.IsValid())
	assert.True(t, MetadataTypeTag.IsValid())
	assert.True(t, MetadataTypeGlossaryTerm.IsValid())
	assert.True(t, MetadataTypeOwner.IsValid())
	assert.False(t, MetadataType("corp_group").IsValid())
	assert.False(t, MetadataType("").IsValid())
}

func TestSemanticsIsValid(t *testing.T) {
	assert.True(t, SemanticsPatch.IsValid())
	assert.True(t, SemanticsOverwrite.IsValid())
	assert.False(t, Semantics("MERGE").IsValid())
}

func TestEntityField(t *testing.T) {
	e := Entity{Fields: map[string]string{"description": "doc"}}
	assert.Equal(t, "doc", e.Field("description"))
	assert.Empty(t, e.Field("missing"))

	var empty Entity
	assert.Empty(t, empty.Field("description"))
}

func TestAspectNames(t *testing.T) {
	tests := []struct {
		aspect Aspect
		want   AspectName
	}{
		{Properties{}, AspectCustomProperties},
		{GlobalTags{}, AspectGlobalTags},
		{GlossaryTerms{}, AspectGlossaryTerms},
		{Ownership{}, AspectOwnership},
		{CorpUserInfo{}, AspectCorpUserInfo},
		{CorpUserEditableInfo{}, AspectCorpUserEditableInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.aspect.AspectName())
	}
}

func TestChangeProposalJSON(t *testing.T) {
	p := ChangeProposal{
		EntityURN: "urn:li:dataset:a",
		Aspect:    AspectOwnership,
		Semantics: SemanticsPatch,
		Payload: Ownership{Owners: []Owner{
			{Owner: "urn:li:corpuser:jane_smith", Type: OwnershipTypeDataOwner},
		}},
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"aspectName":"ownership"`)
	assert.Contains(t, string(data), `"semantics":"PATCH"`)
	assert.Contains(t, string(data), `"type":"DATAOWNER"`)
}
