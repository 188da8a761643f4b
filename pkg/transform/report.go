package transform

import (
	"sync"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

// Report collects run counters across Transform calls. It is the only
// cross-entity state the transformer carries and holds no aspect data.
type Report struct {
	mu sync.Mutex

	entities  int
	bypassed  int
	pairs     int
	misses    int
	proposals int
	byAspect  map[types.AspectName]int
}

// ReportSnapshot is an immutable copy of the run counters
type ReportSnapshot struct {
	Entities  int
	Bypassed  int
	Pairs     int
	Misses    int
	Proposals int
	ByAspect  map[types.AspectName]int
}

func (r *Report) entitySeen() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities++
}

func (r *Report) entityBypassed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bypassed++
}

func (r *Report) pairsExtracted(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pairs += n
}

func (r *Report) rulesMissed(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.misses += n
}

func (r *Report) proposalsEmitted(proposals []types.ChangeProposal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.proposals += len(proposals)
	if r.byAspect == nil {
		r.byAspect = make(map[types.AspectName]int)
	}
	for _, p := range proposals {
		r.byAspect[p.Aspect]++
	}
}

func (r *Report) snapshot() ReportSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	byAspect := make(map[types.AspectName]int, len(r.byAspect))
	for k, v := range r.byAspect {
		byAspect[k] = v
	}
	return ReportSnapshot{
		Entities:  r.entities,
		Bypassed:  r.bypassed,
		Pairs:     r.pairs,
		Misses:    r.misses,
		Proposals: r.proposals,
		ByAspect:  byAspect,
	}
}
