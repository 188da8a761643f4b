package store

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/errors"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

// snapshotFile is the on-disk shape of an aspect snapshot
type snapshotFile struct {
	Entities []snapshotEntity `yaml:"entities"`
}

type snapshotEntity struct {
	URN              string            `yaml:"urn"`
	CustomProperties map[string]string `yaml:"customProperties,omitempty"`
	GlobalTags       []string          `yaml:"globalTags,omitempty"`
	GlossaryTerms    []string          `yaml:"glossaryTerms,omitempty"`
	Ownership        []types.Owner     `yaml:"ownership,omitempty"`
}

// LoadSnapshot reads existing aspect state from a YAML file into a memory
// store, for PATCH runs driven from files rather than a live catalog
func LoadSnapshot(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read aspect snapshot %s", path)
	}

	var snap snapshotFile
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse aspect snapshot %s", path)
	}

	s := NewMemory()
	for _, e := range snap.Entities {
		if e.URN == "" {
			return nil, errors.Newf(errors.ErrConfigValid, "aspect snapshot %s: entity without urn", path)
		}
		if len(e.CustomProperties) > 0 {
			s.Put(e.URN, types.Properties{CustomProperties: e.CustomProperties})
		}
		if len(e.GlobalTags) > 0 {
			tags := make([]types.TagAssociation, 0, len(e.GlobalTags))
			for _, t := range e.GlobalTags {
				tags = append(tags, types.TagAssociation{Tag: t})
			}
			s.Put(e.URN, types.GlobalTags{Tags: tags})
		}
		if len(e.GlossaryTerms) > 0 {
			terms := make([]types.TermAssociation, 0, len(e.GlossaryTerms))
			for _, t := range e.GlossaryTerms {
				terms = append(terms, types.TermAssociation{Term: t})
			}
			s.Put(e.URN, types.GlossaryTerms{Terms: terms})
		}
		if len(e.Ownership) > 0 {
			s.Put(e.URN, types.Ownership{Owners: e.Ownership})
		}
	}

	return s, nil
}
