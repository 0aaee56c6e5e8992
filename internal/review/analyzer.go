// Package review summarizes customer reviews into a sentiment score,
// recurring pros and cons, and a rating histogram.
package review

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wichananm65/storefront-ai/internal/apperror"
	"github.com/wichananm65/storefront-ai/internal/fuzzy"
	"github.com/wichananm65/storefront-ai/internal/lang"
)

const (
	minPhraseWords   = 3
	maxPhraseWords   = 5
	minPhraseCount   = 2
	maxPhrasesPerSet = 3
)

// scores beyond ±sentimentThreshold read as positive or negative
const sentimentThreshold = 0.1

var lower = cases.Lower(language.Und)

type Review struct {
	Text   string   `json:"text" validate:"required"`
	Rating *float64 `json:"rating,omitempty"`
}

// PhraseCount serializes as a two-element array: ["phrase", count].
type PhraseCount struct {
	Phrase string
	Count  int
}

func (p PhraseCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Phrase, p.Count})
}

func (p *PhraseCount) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("phrase count must have two elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.Phrase); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &p.Count)
}

type Highlights struct {
	Pros []PhraseCount `json:"pros"`
	Cons []PhraseCount `json:"cons"`
}

type Analysis struct {
	Summary            Highlights     `json:"summary"`
	SentimentScore     float64        `json:"sentiment_score"`
	RatingDistribution map[string]int `json:"rating_distribution"`
	TotalReviews       int            `json:"total_reviews"`
	Language           lang.Language  `json:"language,omitempty"`
}

func emptyAnalysis() Analysis {
	return Analysis{
		Summary:            Highlights{Pros: []PhraseCount{}, Cons: []PhraseCount{}},
		RatingDistribution: map[string]int{},
	}
}

// Analyze scores reviews written in language l.
func Analyze(reviews []Review, l lang.Language) (Analysis, error) {
	lex, ok := phraseLexicon[l]
	if !ok {
		return Analysis{}, apperror.Validation("Unsupported language: %s", l)
	}
	if len(reviews) == 0 {
		return emptyAnalysis(), nil
	}

	res := emptyAnalysis()
	res.TotalReviews = len(reviews)
	res.Language = l

	var (
		polaritySum float64
		counter     = newPhraseCounter()
	)
	for _, r := range reviews {
		polaritySum += Polarity(r.Text)
		for _, p := range extractPhrases(r.Text, lex.positive, lex.negative) {
			counter.add(p)
		}
		if r.Rating != nil {
			res.RatingDistribution[strconv.FormatFloat(*r.Rating, 'f', -1, 64)]++
		}
	}
	res.SentimentScore = math.Round(polaritySum/float64(len(reviews))*100) / 100

	for _, pc := range counter.mostCommon() {
		if pc.Count < minPhraseCount {
			break
		}
		lp := lower.String(pc.Phrase)
		pos := containsAny(lp, lex.positive)
		neg := containsAny(lp, lex.negative)
		switch {
		case pos && !neg && len(res.Summary.Pros) < maxPhrasesPerSet:
			res.Summary.Pros = append(res.Summary.Pros, pc)
		case neg && !pos && len(res.Summary.Cons) < maxPhrasesPerSet:
			res.Summary.Cons = append(res.Summary.Cons, pc)
		}
	}
	return res, nil
}

// extractPhrases returns every run of 3 to 5 consecutive words that
// contains a lexicon word.
func extractPhrases(text string, positive, negative []string) []string {
	words := strings.FieldsFunc(text, func(r rune) bool { return !fuzzy.IsWordRune(r) })

	var out []string
	for i := range words {
		for n := minPhraseWords; n <= maxPhraseWords && i+n <= len(words); n++ {
			phrase := strings.Join(words[i:i+n], " ")
			lp := lower.String(phrase)
			if containsAny(lp, positive) || containsAny(lp, negative) {
				out = append(out, phrase)
			}
		}
	}
	return out
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// phraseCounter counts phrases and remembers first-seen order for ties.
type phraseCounter struct {
	order  []string
	counts map[string]int
}

func newPhraseCounter() *phraseCounter {
	return &phraseCounter{counts: map[string]int{}}
}

func (c *phraseCounter) add(p string) {
	if _, ok := c.counts[p]; !ok {
		c.order = append(c.order, p)
	}
	c.counts[p]++
}

func (c *phraseCounter) mostCommon() []PhraseCount {
	out := make([]PhraseCount, len(c.order))
	for i, p := range c.order {
		out[i] = PhraseCount{Phrase: p, Count: c.counts[p]}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Count > out[b].Count })
	return out
}
