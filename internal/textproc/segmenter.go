package textproc

import (
	"regexp"
	"strings"
	"unicode"
)

// sentenceBoundary matches a run of text ending in sentence-final punctuation
// (optionally followed by closing quotes/brackets). Trailing text without a
// terminator is picked up separately in SplitSentences.
var sentenceBoundary = regexp.MustCompile(`[^.!?]*[.!?]+["')\]]*`)

// abbreviations that end with a period but do not terminate a sentence.
// Read-only after package init.
var abbreviations = map[string]bool{
	"mr.": true, "mrs.": true, "ms.": true, "dr.": true, "prof.": true,
	"sr.": true, "jr.": true, "st.": true, "vs.": true, "etc.": true,
	"e.g.": true, "i.e.": true, "cf.": true,
	"fig.": true, "no.": true, "al.": true, "approx.": true, "est.": true,
	"inc.": true, "ltd.": true, "co.": true, "corp.": true, "dept.": true,
	"jan.": true, "feb.": true, "mar.": true, "apr.": true, "jun.": true,
	"jul.": true, "aug.": true, "sep.": true, "sept.": true, "oct.": true,
	"nov.": true, "dec.": true,
}

// SplitSentences splits a block of text into individual sentences using
// punctuation boundaries. Splits caused by abbreviations (e.g. "Dr.", "e.g.")
// are merged back into the following unit, preserving the original spacing.
// Output order matches input order; empty or whitespace-only input yields no
// sentences.
func SplitSentences(text string) []string {
	matches := sentenceBoundary.FindAllStringIndex(text, -1)

	var spans [][2]int
	end := 0
	for _, m := range matches {
		spans = append(spans, [2]int{m[0], m[1]})
		end = m[1]
	}
	// Trailing text without a sentence terminator is still a sentence.
	if strings.TrimSpace(text[end:]) != "" {
		spans = append(spans, [2]int{end, len(text)})
	}

	var merged [][2]int
	for _, span := range spans {
		if strings.TrimSpace(text[span[0]:span[1]]) == "" {
			continue
		}
		if n := len(merged); n > 0 && endsWithAbbreviation(text[merged[n-1][0]:merged[n-1][1]]) {
			merged[n-1][1] = span[1]
			continue
		}
		merged = append(merged, span)
	}

	var sentences []string
	for _, span := range merged {
		sentences = append(sentences, strings.TrimSpace(text[span[0]:span[1]]))
	}
	return sentences
}

// endsWithAbbreviation reports whether the last token of s is a known
// abbreviation or an initial, meaning its trailing period is not a sentence
// boundary. Single letter-period tokens also cover the leading pieces of
// multi-period abbreviations, which the boundary regex splits apart
// ("e.g." arrives as "e." then "g.").
func endsWithAbbreviation(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	last := strings.ToLower(fields[len(fields)-1])
	if abbreviations[last] {
		return true
	}
	r := []rune(last)
	return len(r) == 2 && unicode.IsLetter(r[0]) && r[1] == '.'
}

// WordCount returns the number of whitespace-delimited tokens in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// FilterShort removes sentences with fewer than minWords words. Short
// sentences carry too little signal for a meaningful similarity comparison.
func FilterShort(sentences []string, minWords int) []string {
	var result []string
	for _, s := range sentences {
		if WordCount(s) >= minWords {
			result = append(result, s)
		}
	}
	return result
}
