package sandhisplit

// BuildDefaultRules returns the sandhi rule table transliterated from
// gopalvirat/sanskrit_parser's SanskritLexicalAnalyzer.sandhi_context_map
// (original_source/lexical_analyzer/SanskritLexicalAnalyzer.py). The table
// is explicitly acknowledged incomplete there (see the FIXME comments
// reproduced below): rule coverage is data, not a core-contract guarantee.
func BuildDefaultRules() (*RuleTable, error) {
	return NewRuleTable(defaultRuleSpecs)
}

// MustBuildDefaultRules panics if the bundled rule literal fails to build,
// which would indicate a packaging bug (the literal is validated by this
// package's own tests), not a caller error.
func MustBuildDefaultRules() *RuleTable {
	rt, err := BuildDefaultRules()
	if err != nil {
		panic(err)
	}
	return rt
}

var defaultRuleSpecs = []ruleSpec{
	// akaH savarNe dIrghaH
	{lctx: "", trigger: 'A', rctx: "[^ieouEOfFxX]", expansions: []string{"a_a", "a_A", "A_a", "A_A"}},
	// bhobhago'dho'pUrvasya yo'shi, lopashshAkalyasya
	{lctx: "", trigger: 'A', rctx: "[^kKcCtTwWSzs]", expansions: []string{"As_"}},
	// bhobhago'dho'pUrvasya yo'shi, lopashshAkalyasya - ato rorapludadaplute
	{lctx: "", trigger: 'a', rctx: "[^akKcCtTwWSzs]", expansions: []string{"as_"}},
	// akaH savarNe dIrghaH
	{lctx: "", trigger: 'I', rctx: "[^ieouEOfFxX]", expansions: []string{"i_i", "i_I", "I_i", "I_I"}},
	{lctx: "", trigger: 'U', rctx: "[^ieouEOfFxX]", expansions: []string{"u_u", "u_U", "U_u", "U_U"}},
	{lctx: "", trigger: 'F', rctx: "[^ieouEOfFxX]", expansions: []string{"f_f", "f_x", "x_f", "F_x", "x_F", "F_F"}},
	// AdguNaH
	{lctx: "", trigger: 'e', rctx: "[^ieouEOfFxX]", expansions: []string{"e_a", "a_i", "a_I", "A_i", "A_I"}},
	{lctx: "", trigger: 'o', rctx: "[^ieouEOfFxX]", expansions: []string{"o_o", "a_u", "a_U", "A_u", "A_U"}},
	// sasajusho ruH, ato rorapludAdaplute, hashi cha
	{lctx: "", trigger: 'o', rctx: "[^ieouEOfFxXkKpP]", expansions: []string{"as_", "as_a"}},
	// vRddhirechi
	{lctx: "", trigger: 'E', rctx: "[^ieouEOfFxX]", expansions: []string{"E_E", "a_e", "A_e", "a_E", "A_E"}},
	{lctx: "", trigger: 'O', rctx: "[^ieouEOfFxX]", expansions: []string{"O_O", "a_o", "A_o", "a_O", "A_O"}},
	// uraN raparaH
	{lctx: "a", trigger: 'r', rctx: "[^ieouEOfFxX]", expansions: []string{"f_"}},
	{lctx: "a", trigger: 'l', rctx: "[^ieouEOfFxX]", expansions: []string{"x_"}},
	// sasjusho ruH
	{lctx: "[iIuUeEoO]", trigger: 'r', rctx: "", expansions: []string{"s_"}},

	// Partial jhalAM jhasho'nte
	{trigger: 'd', unconditional: true, expansions: []string{"t_", "d_"}},
	{trigger: 'g', unconditional: true, expansions: []string{"k_", "g_"}},

	// kupvoH xk xp va
	{lctx: "", trigger: 'H', rctx: "[kKpPtTwW]", expansions: []string{"s_", "r_"}},
	// visarjanIyasya sa
	{lctx: "", trigger: 's', rctx: "[tTkKpP]", expansions: []string{"s_", "r_"}},
	// visarjanIyasya sa, ShTuNa Shtu -- Does this overdo things?
	{lctx: "", trigger: 'z', rctx: "[wWkKpP]", expansions: []string{"s_", "r_"}},
	// visarjanIyasya sa, schuna schu
	{lctx: "", trigger: 'S', rctx: "[cC]", expansions: []string{"s_", "r_"}},
	// apadAntasya mUrdhanyaH, iNkoH
	{lctx: "[iIuUfFxX]", trigger: 'S', rctx: "", expansions: []string{"s_"}},

	// mo'nusvAraH
	{trigger: 'M', unconditional: true, expansions: []string{"m_", "M_"}},

	// iko yaNachi
	{lctx: "", trigger: 'y', rctx: "[aAuUeEoO]", expansions: []string{"i_", "I_"}},
	{lctx: "", trigger: 'v', rctx: "[aAuUeEoO]", expansions: []string{"u_", "U_"}},

	// anusvArasya yayi pararavarNaH
	{trigger: 'N', unconditional: true, expansions: []string{"N_", "M_"}},
	{trigger: 'Y', unconditional: true, expansions: []string{"Y_", "M_"}},
	{trigger: 'R', unconditional: true, expansions: []string{"R_", "M_"}},
	{trigger: 'n', unconditional: true, expansions: []string{"n_", "M_"}},
	{trigger: 'm', unconditional: true, expansions: []string{"m_", "M_"}},

	// Visarga at the end
	{lctx: "", trigger: 'H', rctx: "$", expansions: []string{"s_", "r_"}},

	// Forbidden to split at s/S/z except for cases already matched above.
	{trigger: 's', unconditional: true, expansions: nil},
	{trigger: 'S', unconditional: true, expansions: nil},
	{trigger: 'z', unconditional: true, expansions: nil},
}

// FIXME: Missing eco ayavAyAvaH, more jhalAM jhasho, lopashshAkalyasya
// FIXME: Lots more hal sandhi missing
// (both carried verbatim from the source this table is grounded on)
