package solver

import (
	"fmt"
	"sort"
	"strings"
)

// accept validates the completed build at the leaf. Unmet minimums and
// duplicate fingerprints drop the build silently; they are search control
// flow, not failures.
func (s *searcher) accept() {
	var build [BuildSize]Relic
	for d, i := range s.picked {
		build[d] = s.candidates[i]
	}

	catLevels := make(map[Category]int)
	skillLevels := make(map[string]int)
	for d := range build {
		build[d].EachSkill(func(sk Skill) {
			skillLevels[sk.Name] += sk.Level
			if cat := s.idx.CategoryOf(sk.Name); cat != CategoryNone {
				catLevels[cat] += sk.Level
			}
		})
	}
	for cat, min := range s.cons.CategoryMinimums {
		if catLevels[cat] < min {
			return
		}
	}
	for name, min := range s.cons.SkillMinimums {
		if skillLevels[name] < min {
			return
		}
	}

	fp := buildFingerprint(build[:])
	if s.seen[fp] {
		return
	}
	s.seen[fp] = true

	effective := make(map[string]int, len(skillLevels))
	totalRaw, totalEff := 0, 0
	for name, raw := range skillLevels {
		eff := raw
		if max := s.idx.MaxLevel(name); eff > max {
			eff = max
		}
		effective[name] = eff
		totalRaw += raw
		totalEff += eff
	}

	s.results = append(s.results, BuildResult{
		Relics:          build,
		CategoryLevels:  catLevels,
		SkillLevels:     skillLevels,
		EffectiveLevels: effective,
		TotalRaw:        totalRaw,
		TotalEffective:  totalEff,
		fp:              fp,
	})
	if len(s.results) >= s.cfg.MaxResults {
		s.full = true
	}
}

// buildFingerprint canonicalizes a build's composition: one key per relic
// from category + primary + sorted secondaries, the six keys sorted and
// joined. Two builds of compositionally identical relics collide here no
// matter which relic IDs were picked or in what order.
func buildFingerprint(relics []Relic) string {
	keys := make([]string, len(relics))
	for i, r := range relics {
		secs := make([]string, len(r.Secondaries))
		for j, sk := range r.Secondaries {
			secs[j] = fmt.Sprintf("%s:%d", sk.Name, sk.Level)
		}
		sort.Strings(secs)
		keys[i] = fmt.Sprintf("%s|%s:%d|%s",
			r.Category, r.Primary.Name, r.Primary.Level, strings.Join(secs, ","))
	}
	sort.Strings(keys)
	return strings.Join(keys, ";")
}
