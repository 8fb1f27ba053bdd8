package solver

// searcher owns all accumulator state for one solve call. Nothing here is
// shared across calls, so concurrent solves need no coordination.
type searcher struct {
	candidates []Relic
	cons       Constraints
	idx        *SkillIndex
	cfg        Config

	picked    [BuildSize]int // candidate indexes of the current partial build
	catSums   map[Category]int
	catCounts map[Category]int
	seen      map[string]bool
	results   []BuildResult
	maxAdd    int  // per-relic category contribution bound
	full      bool // result cap reached, unwind everything
}

func newSearcher(candidates []Relic, cons Constraints, idx *SkillIndex, cfg Config) *searcher {
	return &searcher{
		candidates: candidates,
		cons:       cons,
		idx:        idx,
		cfg:        cfg,
		catSums:    make(map[Category]int),
		catCounts:  make(map[Category]int),
		seen:       make(map[string]bool),
		maxAdd:     MaxRelicContribution(),
	}
}

// run exhausts the depth-6 combination space (or hits the result cap).
// Termination is guaranteed: the cursor strictly advances and both the
// candidate set and the depth are finite.
func (s *searcher) run() []BuildResult {
	s.descend(0, 0)
	return s.results
}

// descend visits every combination exactly once: candidates are iterated
// in index order from a monotone cursor, so selection is order-independent.
func (s *searcher) descend(depth, start int) {
	if depth == BuildSize {
		s.accept()
		return
	}
	if !s.feasible(depth) {
		return
	}
	for i := start; i < len(s.candidates); i++ {
		c := &s.candidates[i]
		if q, ok := s.cons.CategoryQuotas[c.Category]; ok && s.catCounts[c.Category] >= q {
			continue // quota filter: skip this candidate, keep scanning
		}
		s.place(depth, i)
		s.descend(depth+1, i+1)
		s.unplace(i)
		if s.full {
			return
		}
	}
}

// feasible is the branch-and-bound cut: if even maxAdd per remaining slot
// cannot lift some category to its declared minimum, the whole subtree is
// abandoned.
func (s *searcher) feasible(depth int) bool {
	remaining := BuildSize - depth
	for cat, min := range s.cons.CategoryMinimums {
		if s.catSums[cat]+remaining*s.maxAdd < min {
			return false
		}
	}
	return true
}

func (s *searcher) place(depth, i int) {
	c := &s.candidates[i]
	s.picked[depth] = i
	s.catCounts[c.Category]++
	c.EachSkill(func(sk Skill) {
		if cat := s.idx.CategoryOf(sk.Name); cat != CategoryNone {
			s.catSums[cat] += sk.Level
		}
	})
}

func (s *searcher) unplace(i int) {
	c := &s.candidates[i]
	s.catCounts[c.Category]--
	c.EachSkill(func(sk Skill) {
		if cat := s.idx.CategoryOf(sk.Name); cat != CategoryNone {
			s.catSums[cat] -= sk.Level
		}
	})
}
