package match

import (
	"slices"
	"strings"
)

const (
	// DefaultThreshold is the lowest score Suggest reports.
	DefaultThreshold = 0.6
	// DefaultLimit caps the number of names Suggest returns.
	DefaultLimit = 3

	// tokenScore is awarded when a whole word of one name is the other
	// name, as in "product" for "DotProduct" or "vec" for "Vec".
	tokenScore = 0.85
	// prefixScore is awarded when one normalized name starts with the other.
	prefixScore = 0.75
)

// Candidate is a name with its similarity to the input.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by descending score, then by name.
type CandidateList []Candidate

// Names returns the candidate names in order.
func (l CandidateList) Names() []string {
	names := make([]string, len(l))
	for i, c := range l {
		names[i] = c.Name
	}

	return names
}

// Score compares two names after normalization. Equal names score 1. A
// shared word or prefix lifts the edit-distance similarity, since short
// family names ("add") are far in edits from their spelled-out forms
// ("addition").
func Score(input, name string) float64 {
	a, b := NormalizeIdent(input), NormalizeIdent(name)
	if a == "" || b == "" {
		return 0
	}

	score := Similarity(a, b)

	if strings.HasPrefix(a, b) || strings.HasPrefix(b, a) {
		score = max(score, prefixScore)
	}

	if slices.Contains(TokenizeIdent(input), b) || slices.Contains(TokenizeIdent(name), a) {
		score = max(score, tokenScore)
	}

	return score
}

// Rank scores every distinct name against input. Names equal to input are
// skipped: they are not a correction.
func Rank(input string, names []string) CandidateList {
	seen := make(map[string]bool, len(names))
	list := make(CandidateList, 0, len(names))

	for _, name := range names {
		if name == input || seen[name] {
			continue
		}

		seen[name] = true
		list = append(list, Candidate{Name: name, Score: Score(input, name)})
	}

	slices.SortStableFunc(list, func(x, y Candidate) int {
		switch {
		case x.Score > y.Score:
			return -1
		case x.Score < y.Score:
			return 1
		default:
			return strings.Compare(x.Name, y.Name)
		}
	})

	return list
}

// Suggest returns up to DefaultLimit names scoring at least DefaultThreshold
// against input, best first.
func Suggest(input string, names []string) []string {
	return SuggestN(input, names, DefaultThreshold, DefaultLimit)
}

// SuggestN is Suggest with an explicit threshold and limit. A limit below
// one returns every name above the threshold.
func SuggestN(input string, names []string, threshold float64, limit int) []string {
	ranked := Rank(input, names)

	cut := len(ranked)
	for i, c := range ranked {
		if c.Score < threshold {
			cut = i

			break
		}
	}

	ranked = ranked[:cut]
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	if len(ranked) == 0 {
		return nil
	}

	return ranked.Names()
}
