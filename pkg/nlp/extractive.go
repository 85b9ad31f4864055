package nlp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/nafamubarokhusni/News-Summary/pkg/lib"
)

const (
	// summarySentenceCount is how many sentences the extractive summary keeps.
	summarySentenceCount = 3
	// shortBodyLimitRunes caps the output when the body has too few
	// sentences to rank.
	shortBodyLimitRunes = 500
	// idealSentenceRunes anchors the length score: a sentence this long
	// scores idealSentenceScore, longer ones approach 1.0.
	idealSentenceRunes = 120.0
	idealSentenceScore = 0.8

	positionWeight = 0.5
	lengthWeight   = 0.2
	overlapWeight  = 0.3
)

var lengthGrowthRate = lib.FitGrowthRate(idealSentenceRunes, idealSentenceScore, 1.0, 64)

// ExtractiveSummarizer selects the highest scoring sentences out of the
// article itself. No model, no network. Identical title and body always
// produce an identical summary.
type ExtractiveSummarizer struct{}

func NewExtractiveSummarizer() *ExtractiveSummarizer {
	return &ExtractiveSummarizer{}
}

func (s *ExtractiveSummarizer) Summarize(_ context.Context, title, body string) (string, error) {
	body = lib.CollapseWhitespace(body)
	if body == "" {
		return "", fmt.Errorf("empty article body")
	}

	sentences := splitSentences(body)
	if len(sentences) < summarySentenceCount {
		out, limited := lib.LimitStringLength(body, shortBodyLimitRunes)
		if limited {
			out += "..."
		}
		return out, nil
	}

	scored := scoreSentences(sentences, title)

	// Rank by score, then emit the winners in their original order.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	top := scored[:summarySentenceCount]
	sort.SliceStable(top, func(i, j int) bool { return top[i].index < top[j].index })

	parts := make([]string, 0, len(top))
	for _, sent := range top {
		parts = append(parts, sent.text)
	}

	return strings.Join(parts, " "), nil
}

type scoredSentence struct {
	index int
	text  string
	score float64
}

// scoreSentences weighs each sentence by how early it appears, how close it
// is to a full-length sentence, and how many title keywords it mentions.
// News articles front-load the substance, so position carries the most
// weight.
func scoreSentences(sentences []string, title string) []scoredSentence {
	keywords := titleKeywords(title)

	scored := make([]scoredSentence, len(sentences))
	for i, text := range sentences {
		position := 1.0 - float64(i)/float64(len(sentences))
		length := lib.LogAsymptote(float64(utf8.RuneCountInString(text)), 1.0, lengthGrowthRate)
		overlap := keywordOverlap(text, keywords)

		scored[i] = scoredSentence{
			index: i,
			text:  text,
			score: positionWeight*position + lengthWeight*length + overlapWeight*overlap,
		}
	}

	return scored
}

// titleKeywords returns the distinct lowercased title words longer than
// three runes, stripped of surrounding punctuation.
func titleKeywords(title string) []string {
	seen := make(map[string]struct{})
	var keywords []string

	for _, w := range strings.Fields(strings.ToLower(title)) {
		w = strings.Trim(w, `.,:;!?"'()[]`)
		if utf8.RuneCountInString(w) <= 3 {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
	}

	return keywords
}

// keywordOverlap is the fraction of title keywords found in the sentence.
// Matching folds case and diacritics so "Muenchen" still hits "münchen".
func keywordOverlap(sentence string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	words := strings.Fields(strings.ToLower(sentence))

	matches := 0
	for _, kw := range keywords {
		if len(fuzzy.FindNormalizedFold(kw, words)) > 0 {
			matches++
		}
	}

	return float64(matches) / float64(len(keywords))
}

// splitSentences cuts text on sentence-ending punctuation followed by
// whitespace. Good enough for news prose; abbreviations like "U.S." split
// wrong occasionally, which only shifts sentence boundaries, never drops
// text.
func splitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		b.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && runes[i+1] != ' ' {
			continue
		}

		if s := strings.TrimSpace(b.String()); s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}

	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}
