package solver

import (
	"sort"

	"github.com/samber/lo"
)

// scoreRelic weights a relic by how much it can advance declared minimums:
// every skill level under a category with a declared minimum counts at
// CategoryWeight, every level of a skill whose exact name has a declared
// minimum counts at SkillWeight on top.
func scoreRelic(r *Relic, cons *Constraints, idx *SkillIndex, cfg Config) int {
	score := 0
	r.EachSkill(func(s Skill) {
		if cat := idx.CategoryOf(s.Name); cat != CategoryNone {
			if _, ok := cons.CategoryMinimums[cat]; ok {
				score += s.Level * cfg.CategoryWeight
			}
		}
		if _, ok := cons.SkillMinimums[s.Name]; ok {
			score += s.Level * cfg.SkillWeight
		}
	})
	return score
}

// Reduce shrinks the inventory to a tractable candidate set. Every
// quota-bearing category (every known category when no quota map is given)
// keeps its top TopPerCategory scorers, so no category can be starved out
// of its quota by the cut; the union is then padded from the global score
// order up to MinCandidates. Deliberately heuristic: a build needing a
// low-scoring relic can be missed.
func Reduce(relics []Relic, cons Constraints, idx *SkillIndex, cfg Config) []Relic {
	type scored struct {
		relic Relic
		score int
	}
	all := make([]scored, len(relics))
	for i := range relics {
		all[i] = scored{relics[i], scoreRelic(&relics[i], &cons, idx, cfg)}
	}
	// stable so equal scores keep inventory order, keeping the solve
	// deterministic for identical inputs
	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })

	protected := cons.protectedCategories(idx)

	byCategory := lo.GroupBy(all, func(s scored) Category { return s.relic.Category })
	var picked []Relic
	for _, cat := range protected {
		group := byCategory[cat]
		if len(group) > cfg.TopPerCategory {
			group = group[:cfg.TopPerCategory]
		}
		for _, s := range group {
			picked = append(picked, s.relic)
		}
	}
	picked = lo.UniqBy(picked, func(r Relic) string { return r.ID })

	if len(picked) < cfg.MinCandidates {
		have := lo.SliceToMap(picked, func(r Relic) (string, struct{}) { return r.ID, struct{}{} })
		for _, s := range all {
			if len(picked) >= cfg.MinCandidates {
				break
			}
			if _, ok := have[s.relic.ID]; ok {
				continue
			}
			have[s.relic.ID] = struct{}{}
			picked = append(picked, s.relic)
		}
	}
	return picked
}

// protectedCategories lists the categories whose representation the
// reducer must preserve, in a deterministic order.
func (c *Constraints) protectedCategories(idx *SkillIndex) []Category {
	if len(c.CategoryQuotas) == 0 {
		return idx.KnownCategories()
	}
	cats := lo.Keys(c.CategoryQuotas)
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}
