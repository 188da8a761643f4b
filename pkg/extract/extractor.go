// Package extract scans documentation text for key-value pairs using a
// configurable regular expression.
package extract

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/errors"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/logging"
)

// DefaultPattern matches bullet-point key-value lines of the form
// "- key: value". Values may span lines; each one ends at the next bullet
// or at the end of the text.
const DefaultPattern = `^\s*-\s*([^:]+):\s*(.+?)(?=\n\s*-\s*[^:]+:|$)`

// matchTimeout bounds a single pattern scan. The pattern engine is
// backtracking, so a pathological custom pattern must not hang the
// ingestion pipeline.
const matchTimeout = 5 * time.Second

// Pair is one extracted key-value pair, ordered by position of its match
type Pair struct {
	Key   string
	Value string
}

// Extractor applies one compiled pattern to documentation text. It holds
// no per-document state; Extract may be called any number of times and is
// deterministic for a given input.
type Extractor struct {
	re     *regexp2.Regexp
	logger zerolog.Logger
}

// New compiles pattern and returns an extractor for it. Patterns are run
// in multiline and dotall mode so that values can span lines.
func New(pattern string) (*Extractor, error) {
	re, err := regexp2.Compile(pattern, regexp2.Multiline|regexp2.Singleline)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "failed to compile key-value pattern %q", pattern)
	}
	re.MatchTimeout = matchTimeout

	return &Extractor{
		re:     re,
		logger: logging.GetLogger("extract"),
	}, nil
}

// GroupCount returns the number of capturing groups in the pattern
func (e *Extractor) GroupCount() int {
	// group 0 is the whole match
	return len(e.re.GetGroupNumbers()) - 1
}

// Extract returns every key-value pair the pattern finds in doc, in match
// order. Keys and values are trimmed, and whitespace runs inside values are
// collapsed to single spaces. An empty doc, a pattern without exactly two
// capturing groups, or a pattern that matches nothing all yield an empty
// result; none of these are errors.
func (e *Extractor) Extract(doc string) []Pair {
	if doc == "" {
		return nil
	}

	if e.GroupCount() != 2 {
		e.logger.Warn().
			Int("groups", e.GroupCount()).
			Msg("key-value pattern must have exactly two capturing groups, extracting nothing")
		return nil
	}

	var pairs []Pair
	m, err := e.re.FindStringMatch(doc)
	for m != nil && err == nil {
		key := strings.TrimSpace(m.GroupByNumber(1).String())
		value := collapseWhitespace(m.GroupByNumber(2).String())
		if key != "" {
			pairs = append(pairs, Pair{Key: key, Value: value})
		}
		m, err = e.re.FindNextMatch(m)
	}
	if err != nil {
		e.logger.Warn().Err(err).Msg("pattern scan aborted, returning pairs found so far")
	}

	e.logger.Debug().Int("pairs", len(pairs)).Msg("extracted key-value pairs from documentation")
	return pairs
}

// collapseWhitespace trims s and squeezes internal whitespace runs,
// including the newlines of multi-line bullet values, to single spaces
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
