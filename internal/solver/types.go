package solver

// Category classifies a relic slot type. The valid set is whatever the
// taxonomy declares; names outside it map to CategoryNone and are excluded
// from category aggregation.
type Category string

const CategoryNone Category = ""

// Skill is a named effect with an integer level.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Relic composition rule: one primary skill plus up to two secondary
// skills, each individually capped per slot.
const (
	BuildSize         = 6
	maxPrimaryLevel   = 3
	maxSecondaryLevel = 3
	maxSecondarySlots = 2
)

// MaxRelicContribution is the largest level total a single relic can add
// to one category, derived from the composition rule above. The search
// feasibility bound depends on it staying in sync with the relic shape.
func MaxRelicContribution() int {
	return maxPrimaryLevel + maxSecondarySlots*maxSecondaryLevel
}

// Relic is one inventory item. Read-only during a solve.
type Relic struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Rarity      int      `json:"rarity"`
	Primary     Skill    `json:"primary"`
	Secondaries []Skill  `json:"secondaries,omitempty"` // at most 2
	TotalLevel  int      `json:"totalLevel"`
	AssignedTo  string   `json:"assignedTo,omitempty"`
}

// EachSkill calls fn for the primary and every secondary skill on r.
func (r *Relic) EachSkill(fn func(Skill)) {
	fn(r.Primary)
	for _, s := range r.Secondaries {
		fn(s)
	}
}

// Constraints declares what an acceptable build must reach.
type Constraints struct {
	CategoryMinimums map[Category]int
	SkillMinimums    map[string]int
	CategoryQuotas   map[Category]int // max relic count per category, absent = unlimited
}

// CategorySchema describes one category's skill pool. Secondary templates
// may contain the {element} placeholder, expanded against Taxonomy.Elements.
type CategorySchema struct {
	Name        Category
	Primaries   []string
	Secondaries map[string]int // name template -> aggregate level cap
}

// Taxonomy is the caller-supplied skill classification.
type Taxonomy struct {
	Elements   []string
	Categories []CategorySchema
}

// SkillOverride replaces a taxonomy-derived index entry of the same name.
type SkillOverride struct {
	Category Category
	MaxLevel int
}

// Request carries everything one solve call needs. Nothing in it is
// retained across calls.
type Request struct {
	Relics          []Relic
	Constraints     Constraints
	Taxonomy        Taxonomy
	SkillOverrides  map[string]SkillOverride
	ExcludeAssigned bool
}

// BuildResult is one accepted 6-relic build with its aggregates.
type BuildResult struct {
	Relics          [BuildSize]Relic `json:"relics"`
	CategoryLevels  map[Category]int `json:"categoryLevels"`
	SkillLevels     map[string]int   `json:"skillLevels"`
	EffectiveLevels map[string]int   `json:"effectiveLevels"`
	TotalRaw        int              `json:"totalLevel"`
	TotalEffective  int              `json:"effectiveTotal"`

	fp string // canonical fingerprint, set on acceptance
}
