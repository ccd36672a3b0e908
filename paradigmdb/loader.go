package paradigmdb

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DB is a loaded paradigm database: every model, every lemma, and the
// generated surface-form index built from them. Mirrors collatinus's
// Lemmatiseur, which owns the same triad (modeles/lemmes/index de formes)
// and is built once from a data directory at startup.
type DB struct {
	morphos map[int]string
	models  map[string]*Model
	lemmas  map[string]*Lemma

	// forms indexes every generated surface form to the analyses that
	// produce it, mirroring collatinus's Lemmatiseur::formesAmbigues index
	// built in trouverDesinences/lemmatiseRaw at load time rather than on
	// every lookup.
	forms map[string][]formEntry
}

type formEntry struct {
	lemma     *Lemma
	morphoNum int
}

// New loads a paradigm database from dataDir, which must contain
// morphos.txt, models.txt and lexicon.txt. Mirrors collatinus's
// Lemmatiseur::lire* load sequence: morphos, then models (which may
// reference a parent model already loaded), then lemmas (which reference a
// model by name), then the generated-form index.
func New(dataDir string) (*DB, error) {
	db := &DB{
		morphos: make(map[int]string),
		models:  make(map[string]*Model),
		lemmas:  make(map[string]*Lemma),
		forms:   make(map[string][]formEntry),
	}

	if err := db.loadMorphos(filepath.Join(dataDir, "morphos.txt")); err != nil {
		return nil, err
	}
	if err := db.loadModels(filepath.Join(dataDir, "models.txt")); err != nil {
		return nil, err
	}
	if err := db.loadLemmas(filepath.Join(dataDir, "lexicon.txt")); err != nil {
		return nil, err
	}
	db.buildFormIndex()

	return db, nil
}

func scanDataLines(path string, fn func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("paradigmdb: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("paradigmdb: %s: %w", path, err)
		}
	}
	return sc.Err()
}

// loadMorphos reads "index:description" lines, one per morphological cell
// (e.g. "7:nominative singular"). Mirrors collatinus's lireMorphos.
func (db *DB) loadMorphos(path string) error {
	return scanDataLines(path, func(line string) error {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("malformed morpho line %q", line)
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return fmt.Errorf("malformed morpho index %q: %w", parts[0], err)
		}
		db.morphos[n] = strings.TrimSpace(parts[1])
		return nil
	})
}

// loadModels reads the paradigm model table. Each model occupies one or
// more lines:
//
//	modelName[:parentName][:pos]
//	R radNum radicalRule
//	abs morphoIdx1,morphoIdx2,...
//	des radNum morphoNum1=ending1,morphoNum2=ending2,...
//
// terminated by the next modelName header (recognized because it doesn't
// start with "R ", "abs " or "des "), or by EOF. Mirrors collatinus's
// lisModeles/parseModel split: directive lines accumulate onto the current
// model, and only once a model's whole block has been read is it finalized
// against its parent (desinence/radical-rule/absent inheritance), the way
// parseModel runs after a full block is flushed rather than line by line.
func (db *DB) loadModels(path string) error {
	var cur *Model

	finalize := func(m *Model) error {
		if m == nil || m.parent == nil {
			return nil
		}
		for mn, parentDes := range m.parent.Desinences {
			if m.hasDesinence(mn) {
				continue
			}
			for _, dp := range parentDes {
				if m.isAbsent(dp.MorphoNum) {
					continue
				}
				m.Desinences[mn] = append(m.Desinences[mn], cloneDesinence(dp, m))
			}
		}
		for _, d := range m.AllDesinences() {
			if _, ok := m.RadicalRules[d.RadNum]; !ok {
				if rule, ok := m.parent.RadicalRules[d.RadNum]; ok {
					m.RadicalRules[d.RadNum] = rule
				}
			}
		}
		if m.pos == 0 {
			m.pos = m.parent.pos
		}
		m.Absents = append(m.Absents, m.parent.Absents...)
		return nil
	}

	err := scanDataLines(path, func(line string) error {
		switch {
		case strings.HasPrefix(line, "R "):
			if cur == nil {
				return fmt.Errorf("R directive before model header")
			}
			fields := strings.SplitN(strings.TrimPrefix(line, "R "), " ", 2)
			if len(fields) != 2 {
				return fmt.Errorf("malformed R directive %q", line)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return fmt.Errorf("malformed radical number %q: %w", fields[0], err)
			}
			cur.RadicalRules[n] = fields[1]
			return nil

		case strings.HasPrefix(line, "abs "):
			if cur == nil {
				return fmt.Errorf("abs directive before model header")
			}
			cur.Absents = append(cur.Absents, ListI(strings.TrimPrefix(line, "abs "))...)
			return nil

		case strings.HasPrefix(line, "des "):
			if cur == nil {
				return fmt.Errorf("des directive before model header")
			}
			fields := strings.SplitN(strings.TrimPrefix(line, "des "), " ", 2)
			if len(fields) != 2 {
				return fmt.Errorf("malformed des directive %q", line)
			}
			radNum, err := strconv.Atoi(fields[0])
			if err != nil {
				return fmt.Errorf("malformed radical number %q: %w", fields[0], err)
			}
			for _, pair := range strings.Split(fields[1], ",") {
				kv := strings.SplitN(pair, "=", 2)
				if len(kv) != 2 {
					return fmt.Errorf("malformed desinence pair %q", pair)
				}
				mn, err := strconv.Atoi(kv[0])
				if err != nil {
					return fmt.Errorf("malformed morpho number %q: %w", kv[0], err)
				}
				d := &Desinence{Form: kv[1], MorphoNum: mn, RadNum: radNum, Model: cur}
				cur.Desinences[mn] = append(cur.Desinences[mn], d)
			}
			return nil

		default:
			if err := finalize(cur); err != nil {
				return err
			}
			fields := strings.Split(line, ":")
			m := newModel(fields[0])
			if len(fields) > 1 && fields[1] != "" {
				parent, ok := db.models[fields[1]]
				if !ok {
					return fmt.Errorf("model %q references unknown parent %q", fields[0], fields[1])
				}
				m.parent = parent
			}
			if len(fields) > 2 && fields[2] != "" {
				m.pos = rune(fields[2][0])
			}
			db.models[m.Name] = m
			cur = m
			return nil
		}
	})
	if err != nil {
		return err
	}
	return finalize(cur)
}

// loadLemmas reads the lexicon, one headword per line (see newLemma for the
// line format), resolving each lemma's model reference. Mirrors
// collatinus's lireLemmes parsing of lemmes.la.
func (db *DB) loadLemmas(path string) error {
	return scanDataLines(path, func(line string) error {
		l := newLemma(line)
		if l == nil {
			return fmt.Errorf("malformed lexicon line %q", line)
		}
		m, ok := db.models[l.modelName]
		if !ok {
			return fmt.Errorf("lemma %q references unknown model %q", l.Key, l.modelName)
		}
		l.model = m
		deriveRadicals(l, m)
		if len(l.radicals) == 0 {
			l.radicals[1] = []*Radical{{Form: l.Form, Num: 1, Lemma: l}}
		}
		db.lemmas[l.Key] = l
		return nil
	})
}

// deriveRadicals fills in any radical number the lexicon line left empty
// but the model's radical rules cover, computing it from the lemma's
// canonical form. Mirrors collatinus's Lemmat::ajRadicaux/stemFromGrq:
// a rule is "n,suffix" — strip n characters from the end of the form, then
// append suffix ("0" means no suffix).
func deriveRadicals(l *Lemma, m *Model) {
	for radNum, rule := range m.RadicalRules {
		if _, exists := l.radicals[radNum]; exists {
			continue
		}
		ruleParts := strings.SplitN(rule, ",", 2)
		n, _ := strconv.Atoi(ruleParts[0])
		runes := []rune(l.Form)
		if n > len(runes) {
			n = len(runes)
		}
		stem := string(runes[:len(runes)-n])
		if len(ruleParts) > 1 && ruleParts[1] != "0" {
			stem += ruleParts[1]
		}
		l.radicals[radNum] = []*Radical{{Form: stem, Num: radNum, Lemma: l}}
	}
}

// buildFormIndex generates every inflected surface form for every loaded
// lemma and indexes it, mirroring collatinus's eager construction of
// formesAmbigues: the whole point of a generative paradigm database is to
// pay this cost once at load time so IsWord/Analyse are map lookups.
func (db *DB) buildFormIndex() {
	for _, l := range db.lemmas {
		if l.model == nil {
			continue
		}
		for mn := range l.model.Desinences {
			for _, form := range inflectedForms(l, mn) {
				db.forms[form] = append(db.forms[form], formEntry{lemma: l, morphoNum: mn})
			}
		}
		for _, irr := range l.irregs {
			for _, mn := range irr.Morphos {
				db.forms[irr.Form] = append(db.forms[irr.Form], formEntry{lemma: l, morphoNum: mn})
			}
		}
	}
}

// MorphoDescription returns the human-readable description for a morpho
// index, e.g. "genitive singular".
func (db *DB) MorphoDescription(n int) (string, bool) {
	d, ok := db.morphos[n]
	return d, ok
}

// Lemma returns the loaded lemma for a dictionary key, if any.
func (db *DB) Lemma(key string) (*Lemma, bool) {
	l, ok := db.lemmas[key]
	return l, ok
}

// InflectionTableOf computes the full inflection table for a lemma key.
func (db *DB) InflectionTableOf(key string) (*InflectionTable, bool) {
	l, ok := db.lemmas[key]
	if !ok {
		return nil, false
	}
	return inflectionTable(l), true
}
