package paradigmdb

import (
	"strconv"
	"strings"
	"unicode"
)

// Radical represents a stem used in inflection. Mirrors collatinus's
// Radical in lemme.go/lemma.go.
type Radical struct {
	Form  string
	Num   int
	Lemma *Lemma
}

// Irreg represents an irregular inflected form that supplements or replaces
// the regular paradigm. Mirrors collatinus's Irreg.
type Irreg struct {
	Form string
	// Exclusive indicates this form replaces (rather than supplements) the
	// regular inflection.
	Exclusive bool
	Lemma     *Lemma
	Morphos   []int
}

// Lemma represents a dictionary headword with all its inflectional data.
// Mirrors collatinus's Lemma/Lemme.
type Lemma struct {
	// Key is the canonical lookup key: Form with any trailing homonym
	// digit stripped (see splitHomonym).
	Key string
	// Form is the canonical SLP1 citation form (nom. sg. for nouns, 3rd
	// sg. present for verbs).
	Form string
	// modelName/model identify the inflection paradigm.
	modelName string
	model     *Model
	// IndMorph is the raw part-of-speech / gloss marker string from the
	// lexicon line, e.g. "n.", "v.", "ind.".
	IndMorph string
	POS      PartOfSpeech
	// HomonymNum distinguishes same-spelled headwords (0 or 1 = primary).
	HomonymNum int

	radicals map[int][]*Radical
	irregs   []*Irreg
	// morphosIrregExcl lists morpho indices covered by exclusive irregulars.
	morphosIrregExcl []int
	// Gloss is an optional short English gloss, mirroring collatinus's
	// translations map collapsed to a single default language.
	Gloss string
}

// newLemma parses a line from the lexicon data file and creates a Lemma.
// Line format: key[=form]|model|rad1|rad2|indMorph[|gloss]
// Mirrors collatinus's newLemma parsing of lemmes.la.
func newLemma(line string) *Lemma {
	parts := strings.Split(line, "|")
	if len(parts) < 5 {
		return nil
	}

	l := &Lemma{radicals: make(map[int][]*Radical)}

	keyForm := strings.SplitN(parts[0], "=", 2)
	rawKey := keyForm[0]
	l.Key, l.HomonymNum = splitHomonym(rawKey)
	if len(keyForm) > 1 {
		l.Form, _ = splitHomonym(keyForm[1])
	} else {
		l.Form = l.Key
	}

	l.modelName = parts[1]

	for i := 2; i < 4; i++ {
		if i >= len(parts) || parts[i] == "" {
			continue
		}
		radNum := i - 1
		for _, radStr := range strings.Split(parts[i], ",") {
			if radStr == "" {
				continue
			}
			rad := &Radical{Form: radStr, Num: radNum, Lemma: l}
			l.radicals[radNum] = append(l.radicals[radNum], rad)
		}
	}

	l.IndMorph = parts[4]
	l.POS = detectPOS(l.IndMorph)

	if len(parts) >= 6 {
		l.Gloss = parts[5]
	}

	return l
}

// splitHomonym strips a trailing homonym digit from g (if present) and
// returns (stripped string, homonymNum). Mirrors collatinus's oteNh.
func splitHomonym(g string) (string, int) {
	if g == "" {
		return g, 0
	}
	runes := []rune(g)
	last := runes[len(runes)-1]
	if unicode.IsDigit(last) {
		n, _ := strconv.Atoi(string(last))
		if n > 0 {
			return string(runes[:len(runes)-1]), n
		}
	}
	return g, 0
}

// detectPOS infers part of speech from the indMorph marker string, mirroring
// collatinus's detectPOS (which reads French abbreviations out of
// lemmes.la's indMorph field; here the markers are the customary Sanskrit
// dictionary abbreviations instead).
func detectPOS(indMorph string) PartOfSpeech {
	switch {
	case strings.Contains(indMorph, "a."):
		return POSAdjective
	case strings.Contains(indMorph, "ind."):
		return POSIndeclinable
	case strings.Contains(indMorph, "num."):
		return POSNumeral
	case strings.Contains(indMorph, "pron."):
		return POSPronoun
	case strings.Contains(indMorph, "v."):
		return POSVerb
	case strings.Contains(indMorph, "n."):
		return POSNoun
	default:
		return POSUnknown
	}
}

func (l *Lemma) Model() *Model { return l.model }

// addIrreg attaches an irregular form to this lemma.
func (l *Lemma) addIrreg(irr *Irreg) {
	l.irregs = append(l.irregs, irr)
	if irr.Exclusive {
		l.morphosIrregExcl = append(l.morphosIrregExcl, irr.Morphos...)
	}
}

func (l *Lemma) isExclusiveIrreg(nm int) bool {
	for _, v := range l.morphosIrregExcl {
		if v == nm {
			return true
		}
	}
	return false
}

// irregAt returns the irregular form for morpho index i, and whether it's
// exclusive. Mirrors collatinus's Lemme::irreg.
func (l *Lemma) irregAt(i int) (string, bool) {
	for _, ir := range l.irregs {
		for _, m := range ir.Morphos {
			if m == i {
				return ir.Form, ir.Exclusive
			}
		}
	}
	return "", false
}

// RadicalsAt returns all radicals for radical number r.
func (l *Lemma) RadicalsAt(r int) []*Radical {
	return l.radicals[r]
}
