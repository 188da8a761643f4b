package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/errors"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

func testMappings() []types.KeyMapping {
	return []types.KeyMapping{
		{KeyName: "Owner", MetadataType: types.MetadataTypeOwner, TargetName: "DATAOWNER"},
		{KeyName: "Department", MetadataType: types.MetadataTypeCustomProperty, TargetName: "department"},
		{KeyName: "Classification", MetadataType: types.MetadataTypeTag, TargetName: "urn:li:tag:classification"},
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantKey   string
		wantFound bool
	}{
		{"exact match", "Owner", "Owner", true},
		{"case-insensitive match", "OWNER", "Owner", true},
		{"lowercase match", "department", "Department", true},
		{"mixed case match", "cLaSsIfIcAtIoN", "Classification", true},
		{"no match", "Unlisted", "", false},
		{"empty key", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapping, found := Resolve(tt.key, testMappings())
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantKey, mapping.KeyName)
			}
		})
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	mappings := []types.KeyMapping{
		{KeyName: "Owner", MetadataType: types.MetadataTypeOwner, TargetName: "DATAOWNER"},
		{KeyName: "owner", MetadataType: types.MetadataTypeCustomProperty, TargetName: "owner_prop"},
	}

	mapping, found := Resolve("owner", mappings)
	require.True(t, found)
	assert.Equal(t, types.MetadataTypeOwner, mapping.MetadataType,
		"first mapping in configured order must win")
}

func TestResolve_EmptyMappings(t *testing.T) {
	_, found := Resolve("Owner", nil)
	assert.False(t, found)
}

func TestValidateMappings(t *testing.T) {
	tests := []struct {
		name     string
		mappings []types.KeyMapping
		wantErr  bool
	}{
		{
			name:     "valid mappings",
			mappings: testMappings(),
			wantErr:  false,
		},
		{
			name:     "empty list is valid",
			mappings: nil,
			wantErr:  false,
		},
		{
			name: "empty key name",
			mappings: []types.KeyMapping{
				{KeyName: "", MetadataType: types.MetadataTypeTag, TargetName: "urn:li:tag:x"},
			},
			wantErr: true,
		},
		{
			name: "empty target name",
			mappings: []types.KeyMapping{
				{KeyName: "Owner", MetadataType: types.MetadataTypeOwner, TargetName: ""},
			},
			wantErr: true,
		},
		{
			name: "unknown metadata type",
			mappings: []types.KeyMapping{
				{KeyName: "Owner", MetadataType: "corp_group", TargetName: "x"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMappings(tt.mappings)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrMappingInvalid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
