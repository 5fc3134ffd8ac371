package textproc

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple sentences",
			input:    "This is the first sentence. This is the second one!",
			expected: []string{"This is the first sentence.", "This is the second one!"},
		},
		{
			name:     "question mark boundary",
			input:    "Is this a question? Yes it is.",
			expected: []string{"Is this a question?", "Yes it is."},
		},
		{
			name:     "abbreviation does not split",
			input:    "Dr. Smith wrote the paper. It was published later.",
			expected: []string{"Dr. Smith wrote the paper.", "It was published later."},
		},
		{
			name:     "trailing text without terminator",
			input:    "First sentence. second fragment without a period",
			expected: []string{"First sentence.", "second fragment without a period"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "   \n\t  ",
			expected: nil,
		},
		{
			name:     "single sentence",
			input:    "Machine learning is a subset of artificial intelligence.",
			expected: []string{"Machine learning is a subset of artificial intelligence."},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := SplitSentences(test.input)
			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("Expected %v, got %v", test.expected, result)
			}
		})
	}
}

func TestSplitSentencesIsIdempotent(t *testing.T) {
	input := "One sentence here. Another one there! A third, e.g. with an abbreviation, follows?"

	first := SplitSentences(input)
	second := SplitSentences(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Segmentation is not deterministic: %v vs %v", first, second)
	}
}

func TestSplitSentencesPreservesOrder(t *testing.T) {
	input := "Alpha comes first. Beta comes second. Gamma comes third."

	result := SplitSentences(input)

	if len(result) != 3 {
		t.Fatalf("Expected 3 sentences, got %d", len(result))
	}
	if result[0] != "Alpha comes first." || result[1] != "Beta comes second." || result[2] != "Gamma comes third." {
		t.Errorf("Sentence order does not match input order: %v", result)
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"Hi there.", 2},
		{"Machine learning is a subset of artificial intelligence that focuses on building systems that learn from data.", 17},
	}

	for _, test := range tests {
		if count := WordCount(test.input); count != test.expected {
			t.Errorf("WordCount(%q) = %d, expected %d", test.input, count, test.expected)
		}
	}
}

func TestFilterShort(t *testing.T) {
	sentences := []string{
		"Hi there.",
		"This sentence has more than five words in it.",
		"Too short.",
		"Another sufficiently long sentence for scoring purposes.",
	}

	result := FilterShort(sentences, 5)

	if len(result) != 2 {
		t.Fatalf("Expected 2 sentences after filtering, got %d", len(result))
	}
	if result[0] != sentences[1] || result[1] != sentences[3] {
		t.Errorf("Filtered sentences are wrong or out of order: %v", result)
	}
}

func TestFilterShortAllExcluded(t *testing.T) {
	result := FilterShort([]string{"Hi there.", "Too short."}, 5)

	if len(result) != 0 {
		t.Errorf("Expected no sentences, got %v", result)
	}
}
