package solver

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// ParseRequest decodes a solve request document:
//
//	{
//	  "items": [...], "constraints": {...},
//	  "taxonomy": {...}, "skillOverrides": {...},
//	  "excludeAssigned": bool
//	}
//
// Parsing is tolerant: missing or malformed sections degrade to empty
// values and unrecognized skill names pass through untouched. The solve
// itself decides what an empty section means.
func ParseRequest(doc string) Request {
	root := gjson.Parse(doc)
	var req Request

	if items := root.Get("items"); items.IsArray() {
		items.ForEach(func(_, v gjson.Result) bool {
			if v.IsObject() {
				req.Relics = append(req.Relics, parseRelic(v))
			}
			return true
		})
	}
	req.Constraints = parseConstraints(root.Get("constraints"))
	req.Taxonomy = parseTaxonomy(root.Get("taxonomy"))

	overrides := make(map[string]SkillOverride)
	root.Get("skillOverrides").ForEach(func(k, v gjson.Result) bool {
		if !v.IsObject() {
			return true
		}
		overrides[k.String()] = SkillOverride{
			Category: Category(v.Get("category").String()),
			MaxLevel: int(v.Get("maxLevel").Int()),
		}
		return true
	})
	if len(overrides) > 0 {
		req.SkillOverrides = overrides
	}
	req.ExcludeAssigned = root.Get("excludeAssigned").Bool()
	return req
}

func parseRelic(v gjson.Result) Relic {
	r := Relic{
		ID:       v.Get("id").String(),
		Category: Category(v.Get("category").String()),
		Rarity:   int(v.Get("rarity").Int()),
		Primary: Skill{
			Name:  v.Get("primary.name").String(),
			Level: int(v.Get("primary.level").Int()),
		},
		AssignedTo: v.Get("assignedTo").String(),
	}
	v.Get("secondaries").ForEach(func(_, s gjson.Result) bool {
		r.Secondaries = append(r.Secondaries, Skill{
			Name:  s.Get("name").String(),
			Level: int(s.Get("level").Int()),
		})
		return true
	})
	if tl := v.Get("totalLevel"); tl.Exists() {
		r.TotalLevel = int(tl.Int())
	} else {
		r.EachSkill(func(s Skill) { r.TotalLevel += s.Level })
	}
	return r
}

func parseConstraints(v gjson.Result) Constraints {
	intMap := func(field string) map[Category]int {
		m := make(map[Category]int)
		if f := v.Get(field); f.IsObject() {
			f.ForEach(func(k, val gjson.Result) bool {
				m[Category(k.String())] = int(val.Int())
				return true
			})
		}
		if len(m) == 0 {
			return nil
		}
		return m
	}
	cons := Constraints{
		CategoryMinimums: intMap("categoryMinimums"),
		CategoryQuotas:   intMap("categoryQuotas"),
	}
	skills := make(map[string]int)
	if f := v.Get("skillMinimums"); f.IsObject() {
		f.ForEach(func(k, val gjson.Result) bool {
			skills[k.String()] = int(val.Int())
			return true
		})
	}
	if len(skills) > 0 {
		cons.SkillMinimums = skills
	}
	return cons
}

func parseTaxonomy(v gjson.Result) Taxonomy {
	var tax Taxonomy
	v.Get("elements").ForEach(func(_, e gjson.Result) bool {
		tax.Elements = append(tax.Elements, e.String())
		return true
	})
	v.Get("categories").ForEach(func(_, c gjson.Result) bool {
		cs := CategorySchema{
			Name:        Category(c.Get("name").String()),
			Secondaries: make(map[string]int),
		}
		c.Get("primaries").ForEach(func(_, p gjson.Result) bool {
			cs.Primaries = append(cs.Primaries, p.String())
			return true
		})
		c.Get("secondaries").ForEach(func(k, max gjson.Result) bool {
			cs.Secondaries[k.String()] = int(max.Int())
			return true
		})
		tax.Categories = append(tax.Categories, cs)
		return true
	})
	return tax
}

// LoadRequest reads and decodes a request document from disk.
func LoadRequest(path string) (Request, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseRequest(string(raw)), nil
}
