package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

const testURN = "urn:li:dataset:(urn:li:dataPlatform:postgres,orders,PROD)"

func TestMemoryStore(t *testing.T) {
	s := NewMemory()

	_, found, err := s.GetAspect(testURN, types.AspectCustomProperties)
	require.NoError(t, err)
	assert.False(t, found)

	s.Put(testURN, types.Properties{CustomProperties: map[string]string{"env": "prod"}})

	aspect, found, err := s.GetAspect(testURN, types.AspectCustomProperties)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, types.Properties{CustomProperties: map[string]string{"env": "prod"}}, aspect)

	// other aspect names stay absent
	_, found, err = s.GetAspect(testURN, types.AspectGlobalTags)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore_PutReplaces(t *testing.T) {
	s := NewMemory()
	s.Put(testURN, types.Properties{CustomProperties: map[string]string{"a": "1"}})
	s.Put(testURN, types.Properties{CustomProperties: map[string]string{"b": "2"}})

	aspect, found, err := s.GetAspect(testURN, types.AspectCustomProperties)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, map[string]string{"b": "2"}, aspect.(types.Properties).CustomProperties)
}

func TestLoadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
entities:
  - urn: `+testURN+`
    customProperties:
      env: prod
    globalTags:
      - urn:li:tag:pii
    glossaryTerms:
      - urn:li:glossaryTerm:domain
    ownership:
      - owner: urn:li:corpuser:bob
        type: TECHNICAL_OWNER
`), 0644))

	s, err := LoadSnapshot(path)
	require.NoError(t, err)

	props, found, err := s.GetAspect(testURN, types.AspectCustomProperties)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, map[string]string{"env": "prod"}, props.(types.Properties).CustomProperties)

	tags, found, err := s.GetAspect(testURN, types.AspectGlobalTags)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []types.TagAssociation{{Tag: "urn:li:tag:pii"}}, tags.(types.GlobalTags).Tags)

	terms, found, err := s.GetAspect(testURN, types.AspectGlossaryTerms)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []types.TermAssociation{{Term: "urn:li:glossaryTerm:domain"}}, terms.(types.GlossaryTerms).Terms)

	owners, found, err := s.GetAspect(testURN, types.AspectOwnership)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []types.Owner{
		{Owner: "urn:li:corpuser:bob", Type: types.OwnershipTypeTechnicalOwner},
	}, owners.(types.Ownership).Owners)
}

func TestLoadSnapshot_EntityWithoutURN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
entities:
  - customProperties:
      env: prod
`), 0644))

	_, err := LoadSnapshot(path)
	require.Error(t, err)
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
