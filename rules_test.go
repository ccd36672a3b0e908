package sandhisplit

import "testing"

func TestParseExpansion(t *testing.T) {
	exp, err := parseExpansion("a_A")
	if err != nil {
		t.Fatalf("parseExpansion: %v", err)
	}
	if exp.Left != "a" || exp.Right != "A" {
		t.Errorf("parseExpansion(a_A) = %+v, want {a A}", exp)
	}

	if _, err := parseExpansion("noSeparator"); err == nil {
		t.Error("parseExpansion(malformed): expected error, got nil")
	}
}

func TestNewRuleTableRejectsMalformed(t *testing.T) {
	_, err := NewRuleTable([]ruleSpec{
		{unconditional: true, trigger: 'a', expansions: []string{"bad"}},
	})
	if err == nil {
		t.Error("NewRuleTable with malformed expansion: expected error, got nil")
	}
}

func TestCandidatesAtTrivialBoundary(t *testing.T) {
	rt, err := NewRuleTable(nil)
	if err != nil {
		t.Fatalf("NewRuleTable(nil): %v", err)
	}
	cands := rt.candidatesAt("abc", 0)
	if len(cands) != 1 {
		t.Fatalf("candidatesAt with empty table: got %d candidates, want 1", len(cands))
	}
	if cands[0].left != "a" || cands[0].right != "bc" || !cands[0].hasRight {
		t.Errorf("candidatesAt trivial = %+v", cands[0])
	}
}

func TestCandidatesAtForbidden(t *testing.T) {
	rt, err := NewRuleTable([]ruleSpec{
		{unconditional: true, trigger: 's'},
	})
	if err != nil {
		t.Fatalf("NewRuleTable: %v", err)
	}
	cands := rt.candidatesAt("xsy", 1)
	if len(cands) != 0 {
		t.Errorf("candidatesAt at forbidden trigger: got %d candidates, want 0: %+v", len(cands), cands)
	}
}

func TestCandidatesAtConditional(t *testing.T) {
	rt, err := NewRuleTable([]ruleSpec{
		{
			lctx: "[a]", trigger: 'A', rctx: "[^ieouEOfFxX]",
			expansions: []string{"a_a", "a_A", "A_a", "A_A"},
		},
	})
	if err != nil {
		t.Fatalf("NewRuleTable: %v", err)
	}
	// "aAtma": lctx 'a' before the trigger 'A', rctx 't' (non-vowel) after.
	// 'A' has no unconditional table entry, so the trivial no-sandhi
	// candidate is emitted in addition to the 4 conditional expansions.
	cands := rt.candidatesAt("aAtma", 1)
	if len(cands) != 5 {
		t.Fatalf("candidatesAt conditional: got %d candidates, want 5: %+v", len(cands), cands)
	}
}

// A conditional rule whose right context is "$" (end-of-input) can still
// have a non-empty cmr in its expansion: the expansion's right half becomes
// a real right-fragment to recurse into even though nothing followed the
// trigger at the call site, unlike the unconditional step, which drops cmr
// when the trigger ends the input.
func TestCandidatesAtConditionalEOFWithNonEmptyRight(t *testing.T) {
	rt, err := NewRuleTable([]ruleSpec{
		{trigger: 'x', rctx: "$", expansions: []string{"w_yz"}},
	})
	if err != nil {
		t.Fatalf("NewRuleTable: %v", err)
	}
	cands := rt.candidatesAt("abcx", 3)
	if len(cands) != 2 {
		t.Fatalf("candidatesAt conditional $ rule: got %d candidates, want 2: %+v", len(cands), cands)
	}
	var found bool
	for _, c := range cands {
		if c.left == "abcw" && c.right == "yz" && c.hasRight {
			found = true
		}
	}
	if !found {
		t.Errorf("candidatesAt conditional $ rule: want {left: abcw, right: yz, hasRight: true} among %+v", cands)
	}
}

func TestDefaultRulesBuild(t *testing.T) {
	rt, err := BuildDefaultRules()
	if err != nil {
		t.Fatalf("BuildDefaultRules: %v", err)
	}
	if rt == nil {
		t.Fatal("BuildDefaultRules returned nil table")
	}
	t.Logf("default rule table: %d unconditional triggers, %d conditional rules",
		len(rt.unconditional), len(rt.conditional))
}
