package solver

import (
	"fmt"
	"sort"
	"strings"
)

// FormatResults renders up to top ranked builds as fixed-width text for
// terminal output. Pass top <= 0 to render everything.
func FormatResults(results []BuildResult, top int) string {
	if len(results) == 0 {
		return "no feasible build found"
	}
	n := len(results)
	if top > 0 && n > top {
		n = top
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d builds found, showing %d\n", len(results), n)
	for i := 0; i < n; i++ {
		r := &results[i]
		fmt.Fprintf(&b, "\n#%d  total=%d effective=%d\n", i+1, r.TotalRaw, r.TotalEffective)
		for _, relic := range r.Relics {
			fmt.Fprintf(&b, "  %-12s %-10s %s:%d", relic.ID, relic.Category,
				relic.Primary.Name, relic.Primary.Level)
			for _, s := range relic.Secondaries {
				fmt.Fprintf(&b, " +%s:%d", s.Name, s.Level)
			}
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  categories: %s\n", formatCategoryLevels(r.CategoryLevels))
		fmt.Fprintf(&b, "  skills: %s\n", formatSkillLevels(r.SkillLevels, r.EffectiveLevels))
	}
	return b.String()
}

func formatCategoryLevels(levels map[Category]int) string {
	cats := make([]string, 0, len(levels))
	for c := range levels {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = fmt.Sprintf("%s=%d", c, levels[Category(c)])
	}
	return strings.Join(parts, " ")
}

// formatSkillLevels prints raw levels, marking where the effective level
// was capped below raw.
func formatSkillLevels(raw, effective map[string]int) string {
	names := make([]string, 0, len(raw))
	for n := range raw {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		if raw[names[i]] != raw[names[j]] {
			return raw[names[i]] > raw[names[j]]
		}
		return names[i] < names[j]
	})
	parts := make([]string, len(names))
	for i, n := range names {
		if eff := effective[n]; eff < raw[n] {
			parts[i] = fmt.Sprintf("%s=%d(capped %d)", n, raw[n], eff)
		} else {
			parts[i] = fmt.Sprintf("%s=%d", n, raw[n])
		}
	}
	return strings.Join(parts, " ")
}
