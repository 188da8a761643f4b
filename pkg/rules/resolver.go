// Package rules resolves extracted documentation keys against the
// configured key mappings and validates mapping lists at load time.
package rules

import (
	"strings"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/errors"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

// Resolve finds the mapping for an extracted key. Comparison is
// case-insensitive and mappings are checked in configured order with the
// first match winning. The second return is false when no mapping covers
// the key; undocumented keys are expected and simply dropped by callers.
func Resolve(key string, mappings []types.KeyMapping) (types.KeyMapping, bool) {
	for _, m := range mappings {
		if strings.EqualFold(key, m.KeyName) {
			return m, true
		}
	}
	return types.KeyMapping{}, false
}

// ValidateMappings checks a mapping list for configuration mistakes that
// should be rejected at load time rather than discovered mid-run.
func ValidateMappings(mappings []types.KeyMapping) error {
	for i, m := range mappings {
		if m.KeyName == "" {
			return errors.Newf(errors.ErrMappingInvalid, "key_mappings[%d]: key_name cannot be empty", i)
		}
		if m.TargetName == "" {
			return errors.Newf(errors.ErrMappingInvalid,
				"key_mappings[%d] (%s): target_name cannot be empty", i, m.KeyName)
		}
		if !m.MetadataType.IsValid() {
			return errors.Newf(errors.ErrMappingInvalid,
				"key_mappings[%d] (%s): unknown metadata_type %q", i, m.KeyName, m.MetadataType)
		}
	}
	return nil
}
