package sandhisplit

// TagCategory distinguishes entries in TagMap whose traditional Sanskrit
// term collides across unrelated grammatical sections. The source this
// table is transliterated from (gopalvirat/sanskrit_parser's
// SanskritLexicalAnalyzer.tagmap, a flat Python dict) has two such
// collisions: "प्राथमिकः" names both a verbal-stem conjugation class and a
// kṛdanta (verbal-noun) conjugation class with a different code each, and
// "एकवचनम्" (singular) is listed once among person-tagged nominal codes
// ("np-sg") and again among bare number codes ("sg"). A flat map silently
// collapses these to whichever was inserted last; TagMap keys by
// (term, category) instead so both codes survive.
type TagCategory int

const (
	CategoryVerbConjugation TagCategory = iota
	CategoryVerbSystem
	CategoryNumberPerson
	CategoryPerson
	CategoryNominalCase
	CategoryNumber
	CategoryGender
	CategoryPartOfSpeech
	CategoryAvyayaVerb
	CategoryInfinitiveAbsolutive
	CategoryAbsolutiveConjugation
	CategoryKrdantaConjugation
	CategoryParticiple
	CategoryDerivationalSuffix
	CategoryVoiceActive
	CategoryVoiceMiddle
	CategoryVoicePassive
	CategoryKrdantaPOS
	CategoryCompoundMember
)

type tagKey struct {
	term     string
	category TagCategory
}

// TagMap translates traditional Sanskrit grammatical terms to short tag
// atom codes, out of scope for the splitter itself — used only when
// rendering or filtering results.
type TagMap struct {
	entries map[tagKey]string
}

// NewTagMap returns an empty TagMap.
func NewTagMap() *TagMap {
	return &TagMap{entries: make(map[tagKey]string)}
}

// Add records the tag code for term under category.
func (tm *TagMap) Add(term string, category TagCategory, code string) {
	tm.entries[tagKey{term: term, category: category}] = code
}

// Lookup returns the tag code for term under category, if any.
func (tm *TagMap) Lookup(term string, category TagCategory) (string, bool) {
	code, ok := tm.entries[tagKey{term: term, category: category}]
	return code, ok
}

// BuildDefaultTagMap returns the traditional-term-to-tag-code table
// transliterated from SanskritLexicalAnalyzer.py's self.tagmap literal.
func BuildDefaultTagMap() *TagMap {
	tm := NewTagMap()

	add := func(term string, cat TagCategory, code string) { tm.Add(term, cat, code) }

	add("प्राथमिकः", CategoryVerbConjugation, "v-cj-prim")
	add("णिजन्तः", CategoryVerbConjugation, "v-cj-ca")
	add("यङन्तः", CategoryVerbConjugation, "v-cj-int")
	add("सन्नन्तः", CategoryVerbConjugation, "v-cj-des")

	add("लट्", CategoryVerbSystem, "sys-prs-md-pr")
	add("लोट्", CategoryVerbSystem, "sys-prs-md-ip")
	add("विधिलिङ्", CategoryVerbSystem, "sys-prs-md-op")
	add("लङ्", CategoryVerbSystem, "sys-prs-md-im")
	add("लट्-कर्मणि", CategoryVerbSystem, "sys-pas-md-pr")
	add("लोट्-कर्मणि", CategoryVerbSystem, "sys-pas-md-ip")
	add("विधिलिङ्-कर्मणि", CategoryVerbSystem, "sys-pas-md-op")
	add("लङ्-कर्मणि", CategoryVerbSystem, "sys-pas-md-im")
	add("लृट्", CategoryVerbSystem, "sys-tp-fut")
	add("लिट्", CategoryVerbSystem, "sys-tp-prf")
	add("लुङ्", CategoryVerbSystem, "sys-tp-aor")
	add("आगमाभावयुक्तलुङ्", CategoryVerbSystem, "sys-tp-inj")
	add("लृङ्", CategoryVerbSystem, "sys-tp-cnd")
	add("आशीर्लिङ्", CategoryVerbSystem, "sys-tp-ben")
	add("लुट्", CategoryVerbSystem, "sys-pef")

	add("एकवचनम्", CategoryNumberPerson, "np-sg")
	add("द्विवचनम्", CategoryNumberPerson, "np-du")
	add("बहुवचनम्", CategoryNumberPerson, "np-pl")

	add("उत्तमपुरुषः", CategoryPerson, "fst")
	add("मध्यमपुरुषः", CategoryPerson, "snd")
	add("प्रथमपुरुषः", CategoryPerson, "trd")

	add("प्रथमाविभक्तिः", CategoryNominalCase, "na-nom")
	add("संबोधनविभक्तिः", CategoryNominalCase, "na-voc")
	add("द्वितीयाविभक्तिः", CategoryNominalCase, "na-acc")
	add("तृतीयाविभक्तिः", CategoryNominalCase, "na-ins")
	add("चतुर्थीविभक्तिः", CategoryNominalCase, "na-dat")
	add("पञ्चमीविभक्तिः", CategoryNominalCase, "na-abl")
	add("षष्ठीविभक्तिः", CategoryNominalCase, "na-gen")
	add("सप्तमीविभक्तिः", CategoryNominalCase, "na-loc")

	add("एकवचनम्", CategoryNumber, "sg")
	add("द्विवचनम्", CategoryNumber, "du")
	add("बहुवचनम्", CategoryNumber, "pl")

	add("पुंल्लिङ्गम्", CategoryGender, "mas")
	add("स्त्रीलिङ्गम्", CategoryGender, "fem")
	add("नपुंसकलिङ्गम्", CategoryGender, "neu")

	add("सङ्ख्या", CategoryPartOfSpeech, "dei")
	add("अव्ययम्", CategoryPartOfSpeech, "uf")
	add("क्रियाविशेषणम्", CategoryPartOfSpeech, "ind")
	add("उद्गारः", CategoryPartOfSpeech, "interj")
	add("निपातम्", CategoryPartOfSpeech, "parti")
	add("चादिः", CategoryPartOfSpeech, "prep")
	add("संयोजकः", CategoryPartOfSpeech, "conj")
	add("तसिल्", CategoryPartOfSpeech, "tasil")

	add("अव्ययधातुरूप-प्राथमिकः", CategoryAvyayaVerb, "vu-cj-prim")
	add("अव्ययधातुरूप-णिजन्तः", CategoryAvyayaVerb, "vu-cj-ca")
	add("अव्ययधातुरूप-यङन्तः", CategoryAvyayaVerb, "vu-cj-int")
	add("अव्ययधातुरूप-सन्नन्तः", CategoryAvyayaVerb, "vu-cj-des")

	add("तुमुन्", CategoryInfinitiveAbsolutive, "iv-inf")
	add("क्त्वा", CategoryInfinitiveAbsolutive, "iv-abs")
	add("per", CategoryInfinitiveAbsolutive, "iv-per")

	add("क्त्वा-प्राथमिकः", CategoryAbsolutiveConjugation, "ab-cj-prim")
	add("क्त्वा-णिजन्तः", CategoryAbsolutiveConjugation, "ab-cj-ca")
	add("क्त्वा-यङन्तः", CategoryAbsolutiveConjugation, "ab-cj-int")
	add("क्त्वा-सन्नन्तः", CategoryAbsolutiveConjugation, "ab-cj-des")

	add("प्राथमिकः", CategoryKrdantaConjugation, "kr-cj-prim-no")
	add("णिजन्तः", CategoryKrdantaConjugation, "kr-cj-ca-no")
	add("यङन्तः", CategoryKrdantaConjugation, "kr-cj-int-no")
	add("सन्नन्तः", CategoryKrdantaConjugation, "kr-cj-des-no")
	add("", CategoryKrdantaConjugation, "kr-vb-no")

	add("कर्मणिभूतकृदन्तः", CategoryParticiple, "ppp")
	add("कर्तरिभूतकृदन्तः", CategoryParticiple, "ppa")
	add("कर्मणिवर्तमानकृदन्तः", CategoryParticiple, "pprp")
	add("कर्तरिवर्तमानकृदन्त-परस्मैपदी", CategoryParticiple, "ppr-para")
	add("कर्तरिवर्तमानकृदन्त-आत्मनेपदी", CategoryParticiple, "ppr-atma")
	add("पूर्णभूतकृदन्त-परस्मैपदी", CategoryParticiple, "ppft-para")
	add("पूर्णभूतकृदन्त-आत्मनेपदी", CategoryParticiple, "ppft-atma")
	add("कर्मणिभविष्यत्कृदन्तः", CategoryParticiple, "pfutp")
	add("कर्तरिभविष्यत्कृदन्त-परस्मैपदी", CategoryParticiple, "pfut-para")
	add("कर्तरिभविष्यत्कृदन्त-आत्मनेपदी", CategoryParticiple, "pfut-atma")

	add("य", CategoryDerivationalSuffix, "gya")
	add("ईय", CategoryDerivationalSuffix, "iya")
	add("तव्य", CategoryDerivationalSuffix, "tav")

	// "कर्तरि" (agentive voice) is listed twice in the source with two
	// different codes ("para"/"atma") and no distinguishing key — a
	// genuine ambiguity in the original flat map, not a simple section
	// collision like the ones above. We keep both by splitting on the
	// voice they actually denote (parasmaipada vs. ātmanepada) rather than
	// inventing an arbitrary tiebreak.
	add("कर्तरि", CategoryVoiceActive, "para")
	add("कर्तरि", CategoryVoiceMiddle, "atma")
	add("कर्मणि", CategoryVoicePassive, "pass")

	add("कृदन्तः", CategoryKrdantaPOS, "pa")

	add("समासपूर्वपदनामपदम्", CategoryCompoundMember, "iic")
	add("समासपूर्वपदकृदन्तः", CategoryCompoundMember, "iip")
	add("समासपूर्वपदधातुः", CategoryCompoundMember, "iiv")
	add("उपसर्गः", CategoryCompoundMember, "upsrg")

	return tm
}
