package similarity

import (
	"math"
	"regexp"
	"strings"
)

// tokenPattern matches runs of two or more letters or digits; single-character
// tokens carry no signal and are dropped, matching common TF-IDF vectorizers.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]{2,}`)

// tokenize lowercases the text and strips punctuation, returning word tokens.
// No stemming and no stopword removal is applied.
func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Compare computes the TF-IDF cosine similarity between two texts as a
// percentage in [0, 100], rounded to one decimal place.
//
// The vector space is local to the pair: term document frequencies are derived
// from these two texts alone, so idf weighting is never influenced by other
// candidates compared against the same sentence. If either text has no usable
// tokens the similarity is 0.
func Compare(a, b string) float64 {
	tokensA := tokenize(a)
	tokensB := tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	tfA := termCounts(tokensA)
	tfB := termCounts(tokensB)

	// Smoothed idf over the two-document corpus: ln((1+N)/(1+df)) + 1.
	const n = 2.0
	idf := make(map[string]float64, len(tfA)+len(tfB))
	for term := range tfA {
		df := 1.0
		if _, ok := tfB[term]; ok {
			df = 2.0
		}
		idf[term] = math.Log((1+n)/(1+df)) + 1
	}
	for term := range tfB {
		if _, ok := idf[term]; !ok {
			idf[term] = math.Log((1+n)/(1+1)) + 1
		}
	}

	vecA := weigh(tfA, idf)
	vecB := weigh(tfB, idf)

	cos := dot(vecA, vecB)
	return math.Round(cos*1000) / 10
}

// termCounts returns raw term frequencies for the token list.
func termCounts(tokens []string) map[string]int {
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	return tf
}

// weigh builds an L2-normalized tf-idf vector as a sparse term->weight map.
func weigh(tf map[string]int, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(tf))
	norm := 0.0
	for term, count := range tf {
		w := float64(count) * idf[term]
		vec[term] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for term := range vec {
			vec[term] /= norm
		}
	}
	return vec
}

// dot computes the dot product of two sparse vectors. Both are L2-normalized,
// so this is their cosine similarity.
func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	sum := 0.0
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			sum += wa * wb
		}
	}
	return sum
}

// BestMatch compares the sentence against every candidate snippet and returns
// the highest similarity percentage together with the index of the best
// candidate. Ties resolve to the lower index, preserving provider rank order.
// With no candidates the result is (0, -1).
func BestMatch(sentence string, snippets []string) (float64, int) {
	best := -1
	bestScore := 0.0
	for i, snippet := range snippets {
		score := Compare(sentence, snippet)
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	return bestScore, best
}
