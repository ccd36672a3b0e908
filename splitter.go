package sandhisplit

import "sync"

// SplitTree is the recursive result shape of the splitter:
//   - a terminal leaf: Lemma set, Subtrees == nil
//   - an internal node: Lemma set, Subtrees holds the nonempty split trees
//     for the remaining suffix
//
// A []*SplitTree returned by PossibleSplits is itself the "choice point"
// list: each element is an alternative decomposition.
type SplitTree struct {
	Lemma    string
	Subtrees []*SplitTree // nil means terminal (the whole suffix was Lemma)
}

// Splitter is the memoized recursive sandhi-reversal enumerator. It owns one
// scoreboard, and presumes exclusive ownership by one logical session
// unless built via NewConcurrentSplitter.
type Splitter struct {
	rules      *RuleTable
	oracle     Oracle
	scoreboard map[string][]*SplitTree
	mu         *sync.Mutex // nil for the single-threaded variant
	debug      func(format string, args ...any)
}

// NewSplitter builds a Splitter over the given rule table and oracle,
// presuming exclusive single-goroutine ownership.
func NewSplitter(rules *RuleTable, oracle Oracle) *Splitter {
	return &Splitter{
		rules:      rules,
		oracle:     oracle,
		scoreboard: make(map[string][]*SplitTree),
	}
}

// NewConcurrentSplitter builds a Splitter whose scoreboard is guarded by a
// mutex, for the case where a single Splitter is shared across threads.
func NewConcurrentSplitter(rules *RuleTable, oracle Oracle) *Splitter {
	s := NewSplitter(rules, oracle)
	s.mu = &sync.Mutex{}
	return s
}

// SetDebug installs a trace callback invoked at each split decision,
// mirroring the CLI's --debug flag and the original
// _possible_splits' debug print statements.
func (s *Splitter) SetDebug(fn func(format string, args ...any)) {
	s.debug = fn
}

func (s *Splitter) trace(format string, args ...any) {
	if s.debug != nil {
		s.debug(format, args...)
	}
}

// PossibleSplits returns the set of all hierarchical decompositions of s
// into one or more lemmas. Idempotent and referentially transparent modulo
// the scoreboard cache; terminates on all finite inputs.
func (s *Splitter) PossibleSplits(slp1 string) []*SplitTree {
	if s.mu != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return s.possibleSplits(slp1)
}

func (s *Splitter) possibleSplits(str string) []*SplitTree {
	s.trace("splitting %q", str)

	if cached, ok := s.scoreboard[str]; ok {
		s.trace("found %q in scoreboard", str)
		return cached
	}

	var splits []*SplitTree

	for i := 0; i < len(str); i++ {
		cands := s.rules.candidatesAt(str, i)
		s.trace("position %d candidates: %v", i, cands)

		for _, cand := range cands {
			if !s.oracle.IsWord(cand.left) {
				s.trace("invalid left word: %q", cand.left)
				continue
			}
			s.trace("valid left split: %q", cand.left)
			if cand.hasRight {
				sub := s.possibleSplits(cand.right)
				if len(sub) > 0 {
					splits = append(splits, &SplitTree{Lemma: cand.left, Subtrees: sub})
				}
			} else {
				splits = append(splits, &SplitTree{Lemma: cand.left})
			}
		}
	}

	s.scoreboard[str] = splits
	s.trace("returning %d splits for %q", len(splits), str)
	return splits
}
