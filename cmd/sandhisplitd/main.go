// Command sandhisplitd exposes the sandhi-reversal splitter and
// morphological analyzer as a JSON REST API.
//
// Endpoints:
//
//	GET /api/split?data=<word>[&no_sort=true]
//	GET /api/tags?word=<word>
//	GET /api/match?word=<word>[&base=<lemma>][&tag=<tag>&tag=<tag>...]
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	"github.com/sanskrit-lab/sandhisplit"
	"github.com/sanskrit-lab/sandhisplit/internal/oracledata"
	"github.com/sanskrit-lab/sandhisplit/paradigmdb"
)

type errorResponse struct {
	Error string `json:"error"`
}

type splitResponse struct {
	Data   string     `json:"data"`
	Splits [][]string `json:"splits"`
}

type analysisJSON struct {
	Lemma string   `json:"lemma"`
	Tags  []string `json:"tags"`
}

type tagsResponse struct {
	Word     string         `json:"word"`
	Analyses []analysisJSON `json:"analyses"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func toAnalysesJSON(analyses []sandhisplit.Analysis) []analysisJSON {
	out := make([]analysisJSON, 0, len(analyses))
	for _, a := range analyses {
		var tags []string
		for t := range a.Tags {
			tags = append(tags, t)
		}
		out = append(out, analysisJSON{Lemma: a.Lemma, Tags: tags})
	}
	return out
}

func handleSplit(splitter *sandhisplit.Splitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		data := r.URL.Query().Get("data")
		if data == "" {
			writeError(w, http.StatusBadRequest, "missing 'data' query parameter")
			return
		}
		noSort, _ := strconv.ParseBool(r.URL.Query().Get("no_sort"))

		text := sandhisplit.NewText(data, sandhisplit.SchemeUnknown)
		trees := splitter.PossibleSplits(text.SLP1())
		splits := sandhisplit.Flatten(trees)
		if !noSort {
			sandhisplit.SortByLongestSegment(splits)
		}
		writeJSON(w, http.StatusOK, splitResponse{Data: data, Splits: splits})
	}
}

func handleTags(analyzer *sandhisplit.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		text := sandhisplit.NewText(word, sandhisplit.SchemeUnknown)
		analyses, err := analyzer.TagsOf(text)
		if err != nil {
			writeError(w, http.StatusNotFound, "no tags")
			return
		}
		writeJSON(w, http.StatusOK, tagsResponse{Word: word, Analyses: toAnalysesJSON(analyses)})
	}
}

func handleMatch(analyzer *sandhisplit.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		base := r.URL.Query().Get("base")
		tags := r.URL.Query()["tag"]
		if base == "" && len(tags) == 0 {
			writeError(w, http.StatusBadRequest, "at least one of 'base', 'tag' is required")
			return
		}

		text := sandhisplit.NewText(word, sandhisplit.SchemeUnknown)
		var lemmaText *sandhisplit.SanskritText
		if base != "" {
			t := sandhisplit.NewText(base, sandhisplit.SLP1)
			lemmaText = &t
		}

		analyses, err := analyzer.WordMatches(text, lemmaText, sandhisplit.NewTagset(tags...))
		if err != nil {
			writeError(w, http.StatusNotFound, "no match")
			return
		}
		writeJSON(w, http.StatusOK, tagsResponse{Word: word, Analyses: toAnalysesJSON(analyses)})
	}
}

func loadOracle(dataDir string) (sandhisplit.Oracle, error) {
	if dataDir == "" {
		return sandhisplit.NewLexiconOracleFromParsed(oracledata.Lexicon)
	}
	db, err := paradigmdb.New(dataDir)
	if err != nil {
		return nil, err
	}
	return paradigmdb.NewOracle(db), nil
}

func main() {
	dataDir := flag.String("data", "", "path to a paradigmdb data directory (defaults to the embedded smoke-test lexicon)")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log.Printf("loading oracle data from %q …", *dataDir)
	oracle, err := loadOracle(*dataDir)
	if err != nil {
		log.Fatalf("failed to load oracle: %v", err)
	}
	log.Println("oracle loaded")

	splitter := sandhisplit.NewConcurrentSplitter(sandhisplit.MustBuildDefaultRules(), oracle)
	analyzer := sandhisplit.NewAnalyzer(oracle, sandhisplit.BuildDefaultTagMap())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/split", handleSplit(splitter))
	mux.HandleFunc("/api/tags", handleTags(analyzer))
	mux.HandleFunc("/api/match", handleMatch(analyzer))

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
