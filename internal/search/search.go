package search

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/bookhive/recommend-service/internal/catalog"
	"github.com/bookhive/recommend-service/internal/model"
)

// maxEditDistance bounds how far a spelling correction may stray from
// the typed token.
const maxEditDistance = 2

const maxSuggestions = 5

// tokens keep latin letters, digits and CJK ideographs; everything
// else is stripped before dictionary lookup.
var tokenRe = regexp.MustCompile(`[^a-z0-9\x{4e00}-\x{9fa5}]+`)

// Index answers fuzzy queries over the catalog. The term dictionary is
// built once from the catalog snapshot at construction and is never
// rebuilt: books added later contribute no new searchable terms.
type Index struct {
	catalog *catalog.Catalog
	dict    []string
	known   map[string]struct{}
	log     *zap.Logger
}

func New(cat *catalog.Catalog, log *zap.Logger) *Index {
	idx := &Index{
		catalog: cat,
		known:   make(map[string]struct{}),
		log:     log.Named("search"),
	}
	for _, b := range cat.All() {
		idx.addTerm(b.Title)
		idx.addTerm(b.Author)
	}
	idx.log.Info("search dictionary built", zap.Int("terms", len(idx.dict)))
	return idx
}

func (idx *Index) addTerm(term string) {
	for _, word := range strings.Fields(term) {
		clean := normalize(word)
		if clean == "" {
			continue
		}
		if _, ok := idx.known[clean]; ok {
			continue
		}
		idx.known[clean] = struct{}{}
		idx.dict = append(idx.dict, clean)
	}
}

// SmartSearch corrects the query spelling and searches with the
// corrected string when a correction was found, the original otherwise.
// The corrected query is returned alongside the books so callers can
// show what was actually searched; it is empty when nothing changed.
func (idx *Index) SmartSearch(query string) ([]model.Book, string) {
	if query == "" {
		return nil, ""
	}
	final := query
	corrected, ok := idx.CorrectSpelling(query)
	if ok {
		final = corrected
	} else {
		corrected = ""
	}
	return idx.catalog.Search(final), corrected
}

// CorrectSpelling replaces every unknown token with its closest
// dictionary term within the edit-distance bound. Tokens that
// normalize to two characters or fewer, and tokens already in the
// dictionary, are left alone. Reports whether any substitution
// happened; when none did, callers keep the original query.
func (idx *Index) CorrectSpelling(query string) (string, bool) {
	var sb strings.Builder
	corrected := false

	for _, word := range strings.Fields(query) {
		clean := normalize(word)
		if clean != "" {
			if _, known := idx.known[clean]; !known {
				if suggestion := idx.closestWord(clean); suggestion != "" {
					sb.WriteString(suggestion)
					sb.WriteString(" ")
					corrected = true
					continue
				}
			}
		}
		sb.WriteString(word)
		sb.WriteString(" ")
	}

	if !corrected {
		return "", false
	}
	return strings.TrimSpace(sb.String()), true
}

// Suggest returns up to five dictionary terms starting with the given
// prefix, in dictionary order.
func (idx *Index) Suggest(prefix string) []string {
	if prefix == "" {
		return nil
	}
	lower := strings.ToLower(prefix)

	var suggestions []string
	for _, term := range idx.dict {
		if strings.HasPrefix(term, lower) {
			suggestions = append(suggestions, term)
			if len(suggestions) >= maxSuggestions {
				break
			}
		}
	}
	return suggestions
}

// closestWord scans the whole dictionary for the term with minimum
// edit distance. The strict less-than keeps the first term found on a
// distance tie. Linear scan is fine at book-catalog dictionary sizes.
func (idx *Index) closestWord(word string) string {
	if len([]rune(word)) <= 2 {
		return ""
	}

	best := ""
	minDist := int(^uint(0) >> 1)
	for _, candidate := range idx.dict {
		dist := editDistance(word, candidate)
		if dist < minDist && dist <= maxEditDistance {
			minDist = dist
			best = candidate
		}
	}
	return best
}

// editDistance is plain Levenshtein over runes: insertion, deletion
// and substitution at unit cost, full DP table, no pruning.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	dp := make([][]int, la+1)
	for i := range dp {
		dp[i] = make([]int, lb+1)
		dp[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			dp[i][j] = minInt(
				dp[i-1][j]+1,      // deletion
				dp[i][j-1]+1,      // insertion
				dp[i-1][j-1]+cost, // substitution
			)
		}
	}
	return dp[la][lb]
}

func normalize(word string) string {
	return tokenRe.ReplaceAllString(strings.ToLower(word), "")
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
