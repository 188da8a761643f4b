// Package emit turns per-entity accumulators into change proposals,
// applying PATCH or OVERWRITE semantics against existing aspect state.
package emit

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/aspects"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/errors"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/logging"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

// ownerUserTitle is the title stamped on user entities synthesized for
// extracted owner values
const ownerUserTitle = "Data Owner"

// Emitter builds change proposals from accumulators. For PATCH semantics it
// consults the store for existing aspect state; the store may be nil when
// only OVERWRITE is used.
type Emitter struct {
	semantics types.Semantics
	store     types.AspectStore
	logger    zerolog.Logger
}

// New creates an emitter with the given merge semantics
func New(semantics types.Semantics, store types.AspectStore) *Emitter {
	return &Emitter{
		semantics: semantics,
		store:     store,
		logger:    logging.GetLogger("emit"),
	}
}

// Emit returns one change proposal per non-empty accumulator, plus the
// user-entity proposals synthesized for owners. A failure while building
// one aspect's proposal is logged and skips that aspect only; the other
// aspects of the entity are still emitted.
func (e *Emitter) Emit(entityURN string, acc *aspects.Accumulators) []types.ChangeProposal {
	var out []types.ChangeProposal

	if len(acc.Properties) > 0 {
		payload, err := e.mergeProperties(entityURN, acc.Properties)
		if err != nil {
			e.logAspectFailure(entityURN, types.AspectCustomProperties, err)
		} else {
			out = append(out, e.proposal(entityURN, payload))
		}
	}

	if len(acc.Tags) > 0 {
		payload, err := e.mergeTags(entityURN, acc.Tags)
		if err != nil {
			e.logAspectFailure(entityURN, types.AspectGlobalTags, err)
		} else {
			out = append(out, e.proposal(entityURN, payload))
		}
	}

	if len(acc.Terms) > 0 {
		payload, err := e.mergeTerms(entityURN, acc.Terms)
		if err != nil {
			e.logAspectFailure(entityURN, types.AspectGlossaryTerms, err)
		} else {
			out = append(out, e.proposal(entityURN, payload))
		}
	}

	if len(acc.Owners) > 0 {
		payload, err := e.mergeOwners(entityURN, acc.Owners)
		if err != nil {
			e.logAspectFailure(entityURN, types.AspectOwnership, err)
		} else {
			out = append(out, e.proposal(entityURN, payload))
		}
	}

	// User entities describe the owner, not the entity under transform, so
	// they always overwrite.
	for _, user := range acc.Users {
		out = append(out, types.ChangeProposal{
			EntityURN: user.URN,
			Aspect:    types.AspectCorpUserInfo,
			Semantics: types.SemanticsOverwrite,
			Payload: types.CorpUserInfo{
				Active:      true,
				DisplayName: user.DisplayName,
				Email:       fmt.Sprintf("%s@example.com", types.CorpUserID(user.DisplayName)),
				Title:       ownerUserTitle,
			},
		})
		out = append(out, types.ChangeProposal{
			EntityURN: user.URN,
			Aspect:    types.AspectCorpUserEditableInfo,
			Semantics: types.SemanticsOverwrite,
			Payload: types.CorpUserEditableInfo{
				DisplayName: user.DisplayName,
				Title:       ownerUserTitle,
			},
		})
	}

	e.logger.Debug().
		Str("entity", entityURN).
		Int("proposals", len(out)).
		Msg("emitted change proposals")
	return out
}

func (e *Emitter) proposal(entityURN string, payload types.Aspect) types.ChangeProposal {
	return types.ChangeProposal{
		EntityURN: entityURN,
		Aspect:    payload.AspectName(),
		Semantics: e.semantics,
		Payload:   payload,
	}
}

func (e *Emitter) logAspectFailure(entityURN string, aspect types.AspectName, err error) {
	e.logger.Error().
		Err(err).
		Str("entity", entityURN).
		Str("aspect", string(aspect)).
		Msg("failed to build change proposal for aspect, skipping")
}

// existing fetches the current aspect value for PATCH merges. OVERWRITE
// semantics and a nil store both skip the lookup.
func (e *Emitter) existing(entityURN string, name types.AspectName) (types.Aspect, bool, error) {
	if e.semantics != types.SemanticsPatch || e.store == nil {
		return nil, false, nil
	}
	aspect, found, err := e.store.GetAspect(entityURN, name)
	if err != nil {
		return nil, false, errors.Wrapf(err, errors.ErrStoreLookup,
			"failed to fetch existing %s for %s", name, entityURN)
	}
	return aspect, found, nil
}

func (e *Emitter) mergeProperties(entityURN string, props map[string]string) (types.Properties, error) {
	existing, found, err := e.existing(entityURN, types.AspectCustomProperties)
	if err != nil {
		return types.Properties{}, err
	}

	merged := make(map[string]string, len(props))
	if found {
		current, ok := existing.(types.Properties)
		if !ok {
			return types.Properties{}, errors.Newf(errors.ErrAspectBuild,
				"existing %s for %s has unexpected payload type %T",
				types.AspectCustomProperties, entityURN, existing)
		}
		for k, v := range current.CustomProperties {
			merged[k] = v
		}
	}
	// extracted values win on collision
	for k, v := range props {
		merged[k] = v
	}

	return types.Properties{CustomProperties: merged}, nil
}

func (e *Emitter) mergeTags(entityURN string, tags []types.TagAssociation) (types.GlobalTags, error) {
	existing, found, err := e.existing(entityURN, types.AspectGlobalTags)
	if err != nil {
		return types.GlobalTags{}, err
	}

	seen := make(map[string]bool)
	var merged []types.TagAssociation
	if found {
		current, ok := existing.(types.GlobalTags)
		if !ok {
			return types.GlobalTags{}, errors.Newf(errors.ErrAspectBuild,
				"existing %s for %s has unexpected payload type %T",
				types.AspectGlobalTags, entityURN, existing)
		}
		for _, t := range current.Tags {
			if !seen[t.Tag] {
				seen[t.Tag] = true
				merged = append(merged, t)
			}
		}
	}
	for _, t := range tags {
		if !seen[t.Tag] {
			seen[t.Tag] = true
			merged = append(merged, t)
		}
	}

	return types.GlobalTags{Tags: merged}, nil
}

func (e *Emitter) mergeTerms(entityURN string, terms []types.TermAssociation) (types.GlossaryTerms, error) {
	existing, found, err := e.existing(entityURN, types.AspectGlossaryTerms)
	if err != nil {
		return types.GlossaryTerms{}, err
	}

	seen := make(map[string]bool)
	var merged []types.TermAssociation
	if found {
		current, ok := existing.(types.GlossaryTerms)
		if !ok {
			return types.GlossaryTerms{}, errors.Newf(errors.ErrAspectBuild,
				"existing %s for %s has unexpected payload type %T",
				types.AspectGlossaryTerms, entityURN, existing)
		}
		for _, t := range current.Terms {
			if !seen[t.Term] {
				seen[t.Term] = true
				merged = append(merged, t)
			}
		}
	}
	for _, t := range terms {
		if !seen[t.Term] {
			seen[t.Term] = true
			merged = append(merged, t)
		}
	}

	return types.GlossaryTerms{Terms: merged}, nil
}

func (e *Emitter) mergeOwners(entityURN string, owners []types.Owner) (types.Ownership, error) {
	existing, found, err := e.existing(entityURN, types.AspectOwnership)
	if err != nil {
		return types.Ownership{}, err
	}

	seen := make(map[string]bool)
	ownerKey := func(o types.Owner) string { return o.Owner + "\x00" + string(o.Type) }

	var merged []types.Owner
	if found {
		current, ok := existing.(types.Ownership)
		if !ok {
			return types.Ownership{}, errors.Newf(errors.ErrAspectBuild,
				"existing %s for %s has unexpected payload type %T",
				types.AspectOwnership, entityURN, existing)
		}
		for _, o := range current.Owners {
			if !seen[ownerKey(o)] {
				seen[ownerKey(o)] = true
				merged = append(merged, o)
			}
		}
	}
	for _, o := range owners {
		if !seen[ownerKey(o)] {
			seen[ownerKey(o)] = true
			merged = append(merged, o)
		}
	}

	return types.Ownership{Owners: merged}, nil
}
