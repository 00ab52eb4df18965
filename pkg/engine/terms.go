package engine

import (
	"fmt"
	"strings"
)

// GetTerm looks up a term by exact, case-sensitive name.
// A missing term is a negative result (found=false), not an error; callers
// needing case-insensitivity normalize before calling.
func (e *Engine) GetTerm(name string) (Term, bool, error) {
	if name == "" {
		return Term{}, false, fmt.Errorf("%w: term name is empty", ErrInvalidArgument)
	}
	t, ok := e.snap.Load().terms[name]
	if !ok {
		return Term{}, false, nil
	}
	return *t, true, nil
}

// ListAllTerms returns every indexed term in insertion order, with the total
// count. The order is stable across repeated calls against the same snapshot.
func (e *Engine) ListAllTerms() ([]Term, int) {
	snap := e.snap.Load()
	out := make([]Term, len(snap.order))
	for i, t := range snap.order {
		out[i] = *t
	}
	return out, len(out)
}

// SearchTerms returns terms whose name starts with prefix, in lexical order.
// limit <= 0 means no cap. An empty prefix enumerates everything (lexically,
// unlike ListAllTerms which keeps insertion order).
func (e *Engine) SearchTerms(prefix string, limit int) ([]Term, int) {
	snap := e.snap.Load()
	var out []Term
	snap.sorted.Ascend(prefix, func(name string, t *Term) bool {
		if !strings.HasPrefix(name, prefix) {
			return false
		}
		out = append(out, *t)
		return limit <= 0 || len(out) < limit
	})
	return out, len(out)
}
