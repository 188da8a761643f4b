// Package records reads entity records from files and writes change
// proposals for downstream ingestion.
package records

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/errors"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

// entityFile is the on-disk shape of an entity record file
type entityFile struct {
	Entities []types.Entity `yaml:"entities"`
}

// LoadEntities reads entity records from a YAML file
func LoadEntities(path string) ([]types.Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read entity file %s", path)
	}

	var f entityFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse entity file %s", path)
	}

	for i, e := range f.Entities {
		if e.URN == "" {
			return nil, errors.Newf(errors.ErrConfigValid, "entity file %s: entities[%d] has no urn", path, i)
		}
	}

	return f.Entities, nil
}

// NewRunID returns a fresh run identifier for stamping proposals
func NewRunID() string {
	return uuid.NewString()
}

// WriteProposals writes proposals as JSON lines, one proposal per line,
// each stamped with the run id and observation time
func WriteProposals(w io.Writer, proposals []types.ChangeProposal, runID string) error {
	now := time.Now().UnixMilli()
	enc := json.NewEncoder(w)

	for _, p := range proposals {
		p.SystemMetadata = &types.SystemMetadata{
			RunID:        runID,
			LastObserved: now,
		}
		if err := enc.Encode(p); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite,
				"failed to write proposal for %s/%s", p.EntityURN, p.Aspect)
		}
	}

	return nil
}
