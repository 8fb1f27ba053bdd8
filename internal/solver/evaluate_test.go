package solver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFingerprintIgnoresOrderAndIdentity(t *testing.T) {
	a := relic("a", "attack", sk("berserk", 2), sk("fire damage", 1), sk("ice damage", 3))
	b := relic("b", "defense", sk("bulwark", 3), sk("thorns", 2))
	c := relic("c", "support", sk("haste", 1))

	base := buildFingerprint([]Relic{a, b, c})

	// selection order is irrelevant
	assert.Equal(t, base, buildFingerprint([]Relic{c, a, b}))

	// secondary order within a relic is irrelevant
	swapped := a
	swapped.Secondaries = []Skill{sk("ice damage", 3), sk("fire damage", 1)}
	assert.Equal(t, base, buildFingerprint([]Relic{swapped, b, c}))

	// a compositionally identical relic under another ID collides
	clone := a
	clone.ID = "a2"
	assert.Equal(t, base, buildFingerprint([]Relic{clone, b, c}))

	// any composition change separates
	bumped := a
	bumped.Primary = sk("berserk", 3)
	assert.NotEqual(t, base, buildFingerprint([]Relic{bumped, b, c}))
}

func TestSolveDedupsTwinRelics(t *testing.T) {
	// seven relics where two are compositionally identical: distinct search
	// branches produce the same build twice, only one may survive.
	relics := testInventory(6)
	twin := relics[0]
	twin.ID = "twin-of-000"
	relics = append(relics, twin)

	results, err := Solve(Request{Relics: relics, Taxonomy: testTaxonomy()}, DefaultConfig())
	require.NoError(t, err)

	fps := map[string]int{}
	for _, b := range results {
		fps[buildFingerprint(b.Relics[:])]++
	}
	for fp, n := range fps {
		assert.Equal(t, 1, n, "fingerprint %q accepted %d times", fp, n)
	}
	// C(7,6) = 7 raw combinations, one pair collapses
	assert.Len(t, results, 6)
}

func TestEffectiveLevelsCapped(t *testing.T) {
	// three rally relics push the raw sum past rally's cap of 6
	var relics []Relic
	for i := 0; i < BuildSize; i++ {
		if i < 3 {
			relics = append(relics, relic(fmt.Sprintf("sup-%d", i), "support",
				sk("haste", 1), sk("rally", 3)))
		} else {
			relics = append(relics, relic(fmt.Sprintf("atk-%d", i), "attack",
				sk("berserk", 2)))
		}
	}
	results, err := Solve(Request{Relics: relics, Taxonomy: testTaxonomy()}, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, results, 1)

	b := results[0]
	assert.Equal(t, 9, b.SkillLevels["rally"])
	assert.Equal(t, 6, b.EffectiveLevels["rally"], "raw 9 must clamp to rally's cap")
	assert.Equal(t, 6, b.SkillLevels["berserk"])
	assert.Equal(t, 6, b.EffectiveLevels["berserk"])
	assert.LessOrEqual(t, b.TotalEffective, b.TotalRaw)
}

func TestUnmappedSkillExcludedFromCategories(t *testing.T) {
	var relics []Relic
	for i := 0; i < BuildSize; i++ {
		relics = append(relics, relic(fmt.Sprintf("r-%d", i), "attack",
			sk("berserk", 1), sk("mystery glyph", 3)))
	}
	results, err := Solve(Request{Relics: relics, Taxonomy: testTaxonomy()}, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, results, 1)

	b := results[0]
	// counted as a skill, absent from every category aggregate
	assert.Equal(t, 18, b.SkillLevels["mystery glyph"])
	assert.Equal(t, 6, b.CategoryLevels["attack"])
	assert.NotContains(t, b.CategoryLevels, CategoryNone)
}
