package solver

import "strings"

const elementPlaceholder = "{element}"

// SkillIndex resolves skill names to their category and aggregate level
// cap. It is total: unknown names resolve to CategoryNone and the default
// cap instead of failing.
type SkillIndex struct {
	categories map[string]Category
	maxLevels  map[string]int
	known      []Category
	defaultMax int
}

// BuildIndex derives the lookup tables from the taxonomy, then applies the
// override table on top. Overrides replace any taxonomy-derived entry
// sharing the same name.
func BuildIndex(tax Taxonomy, overrides map[string]SkillOverride, defaultMax int) *SkillIndex {
	idx := &SkillIndex{
		categories: make(map[string]Category),
		maxLevels:  make(map[string]int),
		defaultMax: defaultMax,
	}
	seen := make(map[Category]bool)
	for _, cs := range tax.Categories {
		if cs.Name != CategoryNone && !seen[cs.Name] {
			seen[cs.Name] = true
			idx.known = append(idx.known, cs.Name)
		}
		for _, name := range cs.Primaries {
			idx.categories[name] = cs.Name
			idx.maxLevels[name] = defaultMax
		}
		for tmpl, max := range cs.Secondaries {
			for _, name := range expandTemplate(tmpl, tax.Elements) {
				idx.categories[name] = cs.Name
				idx.maxLevels[name] = max
			}
		}
	}
	for name, ov := range overrides {
		idx.categories[name] = ov.Category
		idx.maxLevels[name] = ov.MaxLevel
	}
	return idx
}

// expandTemplate turns a templated name into concrete names, one per
// element. Names without the placeholder pass through unchanged.
func expandTemplate(tmpl string, elements []string) []string {
	if !strings.Contains(tmpl, elementPlaceholder) {
		return []string{tmpl}
	}
	out := make([]string, 0, len(elements))
	for _, el := range elements {
		out = append(out, strings.ReplaceAll(tmpl, elementPlaceholder, el))
	}
	return out
}

// CategoryOf returns the category a skill aggregates under, or CategoryNone
// for unmapped names.
func (x *SkillIndex) CategoryOf(name string) Category {
	return x.categories[name]
}

// MaxLevel returns the aggregate cap for a skill; unknown names fall back
// to the default.
func (x *SkillIndex) MaxLevel(name string) int {
	if m, ok := x.maxLevels[name]; ok {
		return m
	}
	return x.defaultMax
}

// KnownCategories lists every category the taxonomy declares, in
// declaration order.
func (x *SkillIndex) KnownCategories() []Category {
	return x.known
}
