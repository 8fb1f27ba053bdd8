// Package solver finds 6-relic builds that satisfy per-category and
// per-skill aggregate minimums under category slot quotas. The search is
// best-effort: the inventory is heuristically reduced to a candidate set
// before a branch-and-bound backtracking pass, so the true optimum can be
// missed in exchange for interactive latency on inventories of thousands
// of relics.
package solver

import "fmt"

// Solve runs one full optimization pass: index, reduce, search, rank. It
// is synchronous and keeps no state across calls. A panic anywhere inside
// the pass is recovered into the error return; in-search rejections are
// ordinary control flow and never surface here. An empty result list means
// the solve ran and found nothing, not that it failed.
func Solve(req Request, cfg Config) (results []BuildResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = fmt.Errorf("solve: %v", r)
		}
	}()

	idx := BuildIndex(req.Taxonomy, req.SkillOverrides, cfg.DefaultMaxLevel)

	relics := req.Relics
	if req.ExcludeAssigned {
		kept := make([]Relic, 0, len(relics))
		for _, r := range relics {
			if r.AssignedTo == "" {
				kept = append(kept, r)
			}
		}
		relics = kept
	}

	candidates := Reduce(relics, req.Constraints, idx, cfg)
	found := newSearcher(candidates, req.Constraints, idx, cfg).run()
	Rank(found)
	return found, nil
}
