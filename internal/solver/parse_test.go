package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRequest = `{
  "items": [
    {
      "id": "relic-1", "category": "attack", "rarity": 4,
      "primary": {"name": "berserk", "level": 2},
      "secondaries": [
        {"name": "fire damage", "level": 3},
        {"name": "ice damage", "level": 1}
      ],
      "totalLevel": 6,
      "assignedTo": "hero-1"
    },
    {
      "id": "relic-2", "category": "support", "rarity": 2,
      "primary": {"name": "haste", "level": 1}
    }
  ],
  "constraints": {
    "categoryMinimums": {"attack": 12},
    "skillMinimums": {"fire damage": 6},
    "categoryQuotas": {"attack": 3, "support": 2}
  },
  "taxonomy": {
    "elements": ["fire", "ice"],
    "categories": [
      {
        "name": "attack",
        "primaries": ["berserk"],
        "secondaries": {"{element} damage": 9}
      }
    ]
  },
  "skillOverrides": {
    "berserk": {"category": "support", "maxLevel": 4}
  },
  "excludeAssigned": true
}`

func TestParseRequest(t *testing.T) {
	req := ParseRequest(sampleRequest)

	require.Len(t, req.Relics, 2)
	r := req.Relics[0]
	assert.Equal(t, "relic-1", r.ID)
	assert.Equal(t, Category("attack"), r.Category)
	assert.Equal(t, 4, r.Rarity)
	assert.Equal(t, sk("berserk", 2), r.Primary)
	assert.Equal(t, []Skill{sk("fire damage", 3), sk("ice damage", 1)}, r.Secondaries)
	assert.Equal(t, 6, r.TotalLevel)
	assert.Equal(t, "hero-1", r.AssignedTo)

	// totalLevel falls back to the sum of its skills when absent
	assert.Equal(t, 1, req.Relics[1].TotalLevel)
	assert.Empty(t, req.Relics[1].Secondaries)

	assert.Equal(t, map[Category]int{"attack": 12}, req.Constraints.CategoryMinimums)
	assert.Equal(t, map[string]int{"fire damage": 6}, req.Constraints.SkillMinimums)
	assert.Equal(t, map[Category]int{"attack": 3, "support": 2}, req.Constraints.CategoryQuotas)

	require.Len(t, req.Taxonomy.Categories, 1)
	assert.Equal(t, []string{"fire", "ice"}, req.Taxonomy.Elements)
	assert.Equal(t, Category("attack"), req.Taxonomy.Categories[0].Name)
	assert.Equal(t, map[string]int{"{element} damage": 9}, req.Taxonomy.Categories[0].Secondaries)

	assert.Equal(t, SkillOverride{Category: "support", MaxLevel: 4}, req.SkillOverrides["berserk"])
	assert.True(t, req.ExcludeAssigned)
}

func TestParseRequestTolerant(t *testing.T) {
	for _, doc := range []string{"", "{}", "not json at all", `{"items": 42}`} {
		req := ParseRequest(doc)
		assert.Empty(t, req.Relics, "doc %q", doc)
		assert.Nil(t, req.Constraints.CategoryMinimums)
		assert.Nil(t, req.SkillOverrides)
	}
}

func TestParseThenSolve(t *testing.T) {
	req := ParseRequest(sampleRequest)
	results, err := Solve(req, DefaultConfig())
	require.NoError(t, err)
	// one usable relic after the assignment filter: nothing to build
	assert.Empty(t, results)
}
