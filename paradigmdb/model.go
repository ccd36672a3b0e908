// Package paradigmdb is a stem-and-desinence morphological database for
// Sanskrit, grounded on collatinus's Modele/Lemme/Desinence paradigm
// machinery. Where collatinus generates Latin inflected forms from a
// declension/conjugation paradigm and a lexicon of headwords, paradigmdb
// does the same for Sanskrit nominal declensions and verbal conjugations,
// and exposes the generated surface-form index as a sandhisplit.Oracle,
// wrapping a morphological database as a second oracle backend alongside
// the flat-file LexiconOracle.
package paradigmdb

import (
	"strconv"
	"strings"
)

// ListI parses a morpho-range string into a slice of ints. Format:
// comma-separated items, each either a single int or a range "a-b".
// Mirrors Modele::listeI in collatinus's modele.cpp (via model.go's ListI).
func ListI(s string) []int {
	var result []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if idx := strings.Index(part, "-"); idx > 0 {
			start, _ := strconv.Atoi(part[:idx])
			end, _ := strconv.Atoi(part[idx+1:])
			for i := start; i <= end; i++ {
				result = append(result, i)
			}
		} else {
			n, _ := strconv.Atoi(part)
			result = append(result, n)
		}
	}
	return result
}

// Desinence represents a single inflectional ending in SLP1.
type Desinence struct {
	// Form is the ending in SLP1 (no quantity marks to normalize: SLP1 is
	// already a single unambiguous byte per phoneme, unlike collatinus's
	// Grq/Gr macron pair).
	Form string
	// MorphoNum is the 1-based morphology index.
	MorphoNum int
	// RadNum is the radical number this ending attaches to.
	RadNum int
	// Model is the model that owns this desinence.
	Model *Model
}

// Model represents an inflection paradigm (a nominal declension class or a
// verbal conjugation class), mirroring collatinus's Modele.
type Model struct {
	Name         string
	parent       *Model
	RadicalRules map[int]string
	Absents      []int
	Desinences   map[int][]*Desinence
	pos          rune
}

func newModel(name string) *Model {
	return &Model{
		Name:         name,
		RadicalRules: make(map[int]string),
		Desinences:   make(map[int][]*Desinence),
	}
}

func (m *Model) hasDesinence(morphoNum int) bool {
	_, ok := m.Desinences[morphoNum]
	return ok
}

// isAbsent reports whether morpho index a is absent in this model (an "abs"
// directive excludes it even though the parent model has a desinence for
// it). Mirrors collatinus's Model.isAbsent.
func (m *Model) isAbsent(a int) bool {
	for _, v := range m.Absents {
		if v == a {
			return true
		}
	}
	return false
}

// DesinencesAt returns all desinences for the given morpho index.
func (m *Model) DesinencesAt(morphoNum int) []*Desinence {
	return m.Desinences[morphoNum]
}

// AllDesinences returns all desinences for this model.
func (m *Model) AllDesinences() []*Desinence {
	var result []*Desinence
	for _, list := range m.Desinences {
		result = append(result, list...)
	}
	return result
}

func (m *Model) Parent() *Model { return m.parent }

// EstUn returns true if this model or any ancestor has the given name.
// Mirrors collatinus's Modele::estUn.
func (m *Model) EstUn(name string) bool {
	if m.Name == name {
		return true
	}
	if m.parent != nil {
		return m.parent.EstUn(name)
	}
	return false
}

// POS returns the part of speech this model generates, inferred from model
// ancestry the way collatinus infers noun/adjective/verb from "uita",
// "lupus", "doctus", "amo" and friends — here from the canonical Sanskrit
// paradigm names: "deva" (a-stem masculine noun), "nadI" (I-stem feminine
// noun), "phala" (a-stem neuter noun), "subanta-a" (adjective a/A/a
// declension), "bhU" (thematic present root, verb).
func (m *Model) POS() PartOfSpeech {
	if m.pos != 0 {
		return PartOfSpeech(m.pos)
	}
	switch {
	case m.EstUn("deva") || m.EstUn("nadI") || m.EstUn("phala") || m.EstUn("manas") || m.EstUn("rAjan"):
		return POSNoun
	case m.EstUn("subanta-a") || m.EstUn("subanta-i"):
		return POSAdjective
	case m.EstUn("bhU") || m.EstUn("kf"):
		return POSVerb
	default:
		return POSUnknown
	}
}

func cloneDesinence(d *Desinence, newModel *Model) *Desinence {
	return &Desinence{
		Form:      d.Form,
		MorphoNum: d.MorphoNum,
		RadNum:    d.RadNum,
		Model:     newModel,
	}
}
