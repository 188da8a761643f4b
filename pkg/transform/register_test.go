package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/registry"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

func TestFactoryIsRegistered(t *testing.T) {
	factory, err := registry.GetTransformerFactory(TransformerName)
	require.NoError(t, err)

	transformer, err := factory(map[string]interface{}{
		"semantics": "OVERWRITE",
		"key_mappings": []interface{}{
			map[string]interface{}{
				"key_name":      "Owner",
				"metadata_type": "owner",
				"target_name":   "DATAOWNER",
			},
		},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, TransformerName, transformer.Name())

	proposals, err := transformer.Transform(types.Entity{
		URN:    testURN,
		Type:   types.EntityTypeDataset,
		Fields: map[string]string{"description": "- Owner: Jane Smith"},
	})
	require.NoError(t, err)
	assert.Len(t, proposals, 3, "ownership plus two synthesized user aspects")
}

func TestFactoryRejectsBadConfig(t *testing.T) {
	factory, err := registry.GetTransformerFactory(TransformerName)
	require.NoError(t, err)

	_, err = factory(map[string]interface{}{"semantics": "MERGE"}, nil)
	require.Error(t, err)
}
