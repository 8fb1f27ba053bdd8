package solver

// Config holds search tuning parameters. Adjust these to trade completeness
// for latency. The env tags let the CLI override them without a rebuild.
type Config struct {
	// TopPerCategory is how many top-scoring relics the reducer keeps per
	// quota-bearing category.
	TopPerCategory int `env:"SOLVER_TOP_PER_CATEGORY" envDefault:"15"`
	// MinCandidates is the floor the candidate set is padded up to from the
	// global score order.
	MinCandidates int `env:"SOLVER_MIN_CANDIDATES" envDefault:"50"`
	// CategoryWeight scores a skill level whose category has a declared
	// minimum. Must stay below SkillWeight.
	CategoryWeight int `env:"SOLVER_CATEGORY_WEIGHT" envDefault:"1"`
	// SkillWeight scores a skill level whose exact name has a declared minimum.
	SkillWeight int `env:"SOLVER_SKILL_WEIGHT" envDefault:"2"`
	// MaxResults stops the entire search once this many builds are accepted.
	MaxResults int `env:"SOLVER_MAX_RESULTS" envDefault:"2000"`
	// DefaultMaxLevel is the aggregate cap assumed for skills the index has
	// no entry for.
	DefaultMaxLevel int `env:"SOLVER_DEFAULT_MAX_LEVEL" envDefault:"6"`
}

// DefaultConfig returns the tuning used when no overrides apply. Values
// mirror the envDefault tags.
func DefaultConfig() Config {
	return Config{
		TopPerCategory:  15,
		MinCandidates:   50,
		CategoryWeight:  1,
		SkillWeight:     2,
		MaxResults:      2000,
		DefaultMaxLevel: 6,
	}
}
