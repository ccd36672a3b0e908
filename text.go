package sandhisplit

import "strings"

// Scheme identifies a transliteration scheme for Sanskrit text. SLP1 is the
// canonical internal form the splitter consumes; the others are accepted
// input encodings that are transcoded to SLP1 before any core processing.
type Scheme byte

const (
	// SchemeUnknown is the zero value; NewText auto-detects a scheme for it.
	SchemeUnknown Scheme = iota
	Devanagari
	IAST
	HK
	SLP1
)

// schemeNames maps CLI-facing scheme names to Scheme values, mirroring the
// small name→constant lookup that az-lang-nlp/translit keeps at package
// scope for its Latin/Cyrillic pair.
var schemeNames = map[string]Scheme{
	"devanagari": Devanagari,
	"iast":       IAST,
	"hk":         HK,
	"slp1":       SLP1,
}

// ParseScheme resolves a CLI-facing scheme name (case-insensitive) to a
// Scheme, or ErrUnknownEncoding if the name is not recognized.
func ParseScheme(name string) (Scheme, error) {
	s, ok := schemeNames[strings.ToLower(name)]
	if !ok {
		return SchemeUnknown, ErrUnknownEncoding
	}
	return s, nil
}

// SanskritText is an immutable carrier for a string plus its source
// encoding. The splitter consumes only its SLP1 transcoding.
type SanskritText struct {
	raw    string
	scheme Scheme
}

// NewText wraps s as encoded in scheme. If scheme is SchemeUnknown, the
// encoding is auto-detected from the byte/rune ranges used in s.
func NewText(s string, scheme Scheme) SanskritText {
	if scheme == SchemeUnknown {
		scheme = detectScheme(s)
	}
	return SanskritText{raw: s, scheme: scheme}
}

// Raw returns the original string as supplied, in its source scheme.
func (t SanskritText) Raw() string { return t.raw }

// Scheme returns the text's source encoding.
func (t SanskritText) Scheme() Scheme { return t.scheme }

// SLP1 transcodes the text to the canonical SLP1 byte-string. The splitter
// consumes only this form.
func (t SanskritText) SLP1() string {
	switch t.scheme {
	case SLP1, SchemeUnknown:
		return t.raw
	case Devanagari:
		return devanagariToSLP1(t.raw)
	case IAST:
		return iastToSLP1(t.raw)
	case HK:
		return hkToSLP1(t.raw)
	default:
		return t.raw
	}
}

// detectScheme auto-detects the encoding scheme of s by inspecting its
// character ranges, in the style of az-ai-labs-az-lang-nlp/detect's
// script-range detection: Devanagari block first, then IAST diacritics,
// then HK's aspirate digraphs (kh, gh, ch, jh, Th, Dh), else assume SLP1.
func detectScheme(s string) Scheme {
	for _, r := range s {
		if r >= 0x0900 && r <= 0x097F {
			return Devanagari
		}
	}
	for _, r := range s {
		if strings.ContainsRune(iastDiacritics, r) {
			return IAST
		}
	}
	// HK and SLP1 overlap heavily (both use plain ASCII, capitals for vowel
	// length); the tell is HK's digraphs for aspirates and retroflex
	// capitals that SLP1 never produces in those positions.
	if strings.Contains(s, "kh") || strings.Contains(s, "gh") || strings.Contains(s, "ch") ||
		strings.Contains(s, "jh") || strings.Contains(s, "Th") || strings.Contains(s, "Dh") {
		return HK
	}
	return SLP1
}

const iastDiacritics = "āīūṛṝḷḹṃḥśṣṅñṭḍṇĀĪŪṚṜḶḸṂḤŚṢṄÑṬḌṆ"

// Conversions out of SLP1 back to Devanagari/IAST/HK are intentionally
// omitted: script transliteration is treated as an external collaborator
// except for the SLP1-consuming conversions a SanskritText must perform on
// itself. These tables cover the common, unambiguous subset well enough
// for CLI input.

// devanagariToSLP1 transcodes Devanagari to SLP1. It handles the implicit
// 'a' vowel of bare consonants by post-processing: every consonant not
// immediately followed by a vowel matra or virama keeps its inherent 'a',
// matching the behavior of a standard Devanagari→SLP1 transliterator.
func devanagariToSLP1(s string) string {
	// Visarga/anusvara/candrabindu (H, M, ~) are deliberately excluded: they
	// are standalone signs following an already-present vowel, not
	// consonants carrying an inherent 'a' of their own.
	const consonants = "kKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzsh"
	runes := []rune(s)
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		repl, ok := devanagariSingle[r]
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteString(repl)
		if strings.ContainsRune(consonants, []rune(repl)[0]) && len(repl) == 1 {
			// Look ahead: a following matra or virama suppresses the implicit 'a'.
			if i+1 < len(runes) {
				next := runes[i+1]
				if _, isMatra := devanagariMatras[next]; isMatra {
					continue
				}
				if next == '्' { // virama
					continue
				}
			}
			b.WriteByte('a')
		}
	}
	return b.String()
}

var devanagariSingle = map[rune]string{
	'अ': "a", 'आ': "A", 'इ': "i", 'ई': "I", 'उ': "u", 'ऊ': "U",
	'ऋ': "f", 'ॠ': "F", 'ऌ': "x", 'ॡ': "X",
	'ए': "e", 'ऐ': "E", 'ओ': "o", 'औ': "O",
	'ं': "M", 'ः': "H", 'ँ': "~",
	'क': "k", 'ख': "K", 'ग': "g", 'घ': "G", 'ङ': "N",
	'च': "c", 'छ': "C", 'ज': "j", 'झ': "J", 'ञ': "Y",
	'ट': "w", 'ठ': "W", 'ड': "q", 'ढ': "Q", 'ण': "R",
	'त': "t", 'थ': "T", 'द': "d", 'ध': "D", 'न': "n",
	'प': "p", 'फ': "P", 'ब': "b", 'भ': "B", 'म': "m",
	'य': "y", 'र': "r", 'ल': "l", 'व': "v",
	'श': "S", 'ष': "z", 'स': "s", 'ह': "h",
	'ा': "A", 'ि': "i", 'ी': "I", 'ु': "u", 'ू': "U",
	'ृ': "f", 'ॄ': "F", 'ॢ': "x", 'ॣ': "X",
	'े': "e", 'ै': "E", 'ो': "o", 'ौ': "O",
	'।': ".", '॥': "..",
}

// devanagariMatras lists the dependent vowel signs that replace a
// consonant's inherent 'a' when attached to it. Anusvara (ं), visarga (ः)
// and candrabindu (ँ) are deliberately excluded: they follow the vowel a
// consonant already carries (implicit or matra) rather than replacing it —
// रामः is "rAmaH", not "rAmHa".
var devanagariMatras = map[rune]bool{
	'ा': true, 'ि': true, 'ी': true, 'ु': true, 'ू': true,
	'ृ': true, 'ॄ': true, 'ॢ': true, 'ॣ': true,
	'े': true, 'ै': true, 'ो': true, 'ौ': true,
}

// iastToSLP1Replacer maps IAST diacritic letters to SLP1, one character at a
// time; unmarked ASCII letters pass through unchanged.
var iastToSLP1Replacer = strings.NewReplacer(
	"ā", "A", "ī", "I", "ū", "U",
	"ṛ", "f", "ṝ", "F", "ḷ", "x", "ḹ", "X",
	"ṃ", "M", "ṁ", "M", "ḥ", "H",
	"ś", "S", "ṣ", "z", "ṅ", "N", "ñ", "Y", "ṭ", "w", "ḍ", "q", "ṇ", "R",
	"Ā", "A", "Ī", "I", "Ū", "U",
	"Ṛ", "f", "Ṝ", "F", "Ḷ", "x", "Ḹ", "X",
	"Ṃ", "M", "Ṁ", "M", "Ḥ", "H",
	"Ś", "S", "Ṣ", "z", "Ṅ", "N", "Ñ", "Y", "Ṭ", "w", "Ḍ", "q", "Ṇ", "R",
)

func iastToSLP1(s string) string {
	return iastToSLP1Replacer.Replace(s)
}

// hkToSLP1Replacer maps Harvard-Kyoto letters/digraphs to SLP1. HK already
// uses capital letters for vowel length (A I U), unlike IAST's diacritics,
// but reassigns several retroflex/palatal letters relative to SLP1 — most
// of this table is that reassignment. Multi-character HK tokens (aspirated
// stops, diphthong digraphs, the two vocalic-liquid spellings) are listed
// before the single letters they would otherwise shadow, since
// strings.NewReplacer matches earlier-listed patterns first at a given
// position.
var hkToSLP1Replacer = strings.NewReplacer(
	"lRR", "X", "lR", "x", "RR", "F",
	"kh", "K", "gh", "G", "ch", "C", "jh", "J",
	"Th", "W", "Dh", "Q", "th", "T", "dh", "D", "ph", "P", "bh", "B",
	"ai", "E", "au", "O",
	"A", "A", "I", "I", "U", "U",
	"R", "f", "M", "M", "H", "H",
	"G", "N", "J", "Y", "T", "w", "D", "q", "N", "R",
	"z", "S", "S", "z",
)

func hkToSLP1(s string) string {
	return hkToSLP1Replacer.Replace(s)
}
