package sandhisplit

import (
	"fmt"
	"strings"

	"github.com/coregx/coregex"
)

// Expansion is a pair of the underlying left-fragment tail and right-fragment
// head that, when joined, surface as a trigger character in a given
// context — the "L_R" expansion shape.
type Expansion struct {
	Left  string
	Right string
}

// parseExpansion parses a raw "L_R" string into an Expansion, returning
// ErrMalformedRule if it doesn't contain exactly one separator.
func parseExpansion(raw string) (Expansion, error) {
	parts := strings.SplitN(raw, "_", 2)
	if len(parts) != 2 {
		return Expansion{}, fmt.Errorf("%w: %q", ErrMalformedRule, raw)
	}
	return Expansion{Left: parts[0], Right: parts[1]}, nil
}

// conditionalRule is a triple-trigger entry: (Lctx, c, Rctx) -> expansions.
// Mirrors the tuple keys of the original sandhi_context_map.
type conditionalRule struct {
	lctx       *coregex.Regex // nil means "no constraint"
	trigger    byte
	rctx       *coregex.Regex // nil means "no constraint"
	rctxIsEOF  bool           // Rctx == "$"
	expansions []Expansion
}

// unconditionalEntry is the unconditional-trigger table entry for one
// character: either a list of expansions, or "forbidden" (Expansions == nil
// && Forbidden == true), meaning no boundary may be proposed at this
// character unless a conditional rule above matches.
type unconditionalEntry struct {
	expansions []Expansion
	forbidden  bool
}

// RuleTable is the static declarative sandhi rule table, indexed by
// trigger byte for O(1) dispatch, the way model.go indexes
// Model.Desinences by morpho number.
type RuleTable struct {
	unconditional map[byte]unconditionalEntry
	conditional   []conditionalRule // order matters: evaluated in table order
}

// ruleSpec is the declarative source form used by BuildDefaultRules and any
// caller assembling a custom table; it mirrors the shape of the Python
// sandhi_context_map literal it's grounded on.
type ruleSpec struct {
	lctx, rctx string // "" means unconstrained; "$" on rctx means end-of-input
	trigger    byte
	expansions []string // raw "L_R" strings; nil/empty == forbidden (unconditional only)
	unconditional bool
}

// NewRuleTable compiles specs into a RuleTable, validating every expansion
// against the "L_R" shape at construction time: a malformed rule table is
// a construction-time error, never discovered mid-split.
func NewRuleTable(specs []ruleSpec) (*RuleTable, error) {
	rt := &RuleTable{unconditional: make(map[byte]unconditionalEntry)}
	for _, sp := range specs {
		if sp.unconditional {
			entry := unconditionalEntry{forbidden: len(sp.expansions) == 0}
			for _, raw := range sp.expansions {
				exp, err := parseExpansion(raw)
				if err != nil {
					return nil, err
				}
				entry.expansions = append(entry.expansions, exp)
			}
			existing := rt.unconditional[sp.trigger]
			existing.expansions = append(existing.expansions, entry.expansions...)
			if entry.forbidden && len(existing.expansions) == 0 {
				existing.forbidden = true
			}
			rt.unconditional[sp.trigger] = existing
			continue
		}

		cr := conditionalRule{trigger: sp.trigger}
		if sp.lctx != "" {
			re, err := coregex.Compile(sp.lctx)
			if err != nil {
				return nil, fmt.Errorf("%w: left context %q: %v", ErrMalformedRule, sp.lctx, err)
			}
			cr.lctx = re
		}
		if sp.rctx == "$" {
			cr.rctxIsEOF = true
		} else if sp.rctx != "" {
			re, err := coregex.Compile(sp.rctx)
			if err != nil {
				return nil, fmt.Errorf("%w: right context %q: %v", ErrMalformedRule, sp.rctx, err)
			}
			cr.rctx = re
		}
		for _, raw := range sp.expansions {
			exp, err := parseExpansion(raw)
			if err != nil {
				return nil, err
			}
			cr.expansions = append(cr.expansions, exp)
		}
		rt.conditional = append(rt.conditional, cr)
	}
	return rt, nil
}

// candidate is a reverse-sandhi candidate pair produced at a split position.
type candidate struct {
	left  string
	right string // empty string means "no right fragment" (terminal)
	hasRight bool
}

// candidatesAt implements the rule-application procedure at position i in
// s: c = s[i], L = s[:i+1], R = s[i+1:].
func (rt *RuleTable) candidatesAt(s string, i int) []candidate {
	c := s[i]
	left := s[:i+1]
	right := s[i+1:]

	var out []candidate

	// Step 1: unconditional lookup on c.
	if entry, ok := rt.unconditional[c]; ok {
		if !entry.forbidden {
			seen := make(map[candidate]bool)
			for _, exp := range entry.expansions {
				var cand candidate
				if right != "" {
					crsstr := exp.Right + right
					if crsstr == s {
						continue // edge rule: discard non-productive cycles
					}
					cand = candidate{left: left[:len(left)-1] + exp.Left, right: crsstr, hasRight: true}
				} else {
					cand = candidate{left: left[:len(left)-1] + exp.Left, hasRight: false}
				}
				if !seen[cand] {
					seen[cand] = true
					out = append(out, cand)
				}
			}
		} else if right == "" {
			// forbidden bars a boundary at c, but c ending the input is no
			// boundary: the whole string stays a terminal candidate.
			out = append(out, candidate{left: left, hasRight: false})
		}
		// forbidden with a non-empty right: emit nothing in this step.
	} else {
		out = append(out, candidate{left: left, right: right, hasRight: right != ""})
	}

	// Step 2: conditional lookup, in table order.
	for _, cr := range rt.conditional {
		if cr.trigger != c {
			continue
		}
		if !matchCtx(cr.lctx, left, -2) {
			continue
		}
		if !matchRctx(cr, right) {
			continue
		}
		for _, exp := range cr.expansions {
			crsstr := exp.Right + right
			if crsstr == s {
				continue
			}
			cand := candidate{left: left[:len(left)-1] + exp.Left, right: crsstr, hasRight: crsstr != ""}
			out = append(out, cand)
		}
	}

	return out
}

// matchCtx reports whether the left-context pattern matches the character
// at the given negative rune offset from the end of s (offset -2 means
// "the character before the trigger", i.e. s[len(s)-2]). A nil pattern
// always matches (no constraint).
func matchCtx(re *coregex.Regex, s string, offset int) bool {
	if re == nil {
		return true
	}
	idx := len(s) + offset
	if idx < 0 {
		return false
	}
	return re.MatchString(string(s[idx]))
}

// matchRctx reports whether a conditional rule's right-context matches the
// remaining right fragment R: Rctx is None (always matches), matches
// R[0], or R is empty and Rctx == "$".
func matchRctx(cr conditionalRule, right string) bool {
	if cr.rctxIsEOF {
		return right == ""
	}
	if cr.rctx == nil {
		return true
	}
	if right == "" {
		return false
	}
	return cr.rctx.MatchString(string(right[0]))
}
