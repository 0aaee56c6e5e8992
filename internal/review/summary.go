package review

import (
	"strconv"
	"strings"

	"github.com/wichananm65/storefront-ai/internal/apperror"
	"github.com/wichananm65/storefront-ai/internal/lang"
)

type summaryTemplate struct {
	intro, sentiment, pros, cons string
	positive, negative, neutral  string
}

var summaryTemplates = map[lang.Language]summaryTemplate{
	lang.English: {
		intro:     "Based on {total} reviews:",
		sentiment: "Overall sentiment is {sentiment}.",
		pros:      "Pros: {pros}",
		cons:      "Cons: {cons}",
		positive:  "positive",
		negative:  "negative",
		neutral:   "neutral",
	},
	lang.Hindi: {
		intro:     "{total} समीक्षाओं के आधार पर:",
		sentiment: "समग्र प्रतिक्रिया {sentiment} है।",
		pros:      "फायदे: {pros}",
		cons:      "नुकसान: {cons}",
		positive:  "सकारात्मक",
		negative:  "नकारात्मक",
		neutral:   "तटस्थ",
	},
}

// Summarize renders a into newline-separated lines: intro, overall
// sentiment, then pros and cons when there are any.
func Summarize(a Analysis, l lang.Language) (string, error) {
	t, ok := summaryTemplates[l]
	if !ok {
		return "", apperror.Validation("Unsupported language: %s", l)
	}

	sentiment := t.neutral
	switch {
	case a.SentimentScore > sentimentThreshold:
		sentiment = t.positive
	case a.SentimentScore < -sentimentThreshold:
		sentiment = t.negative
	}

	lines := []string{
		strings.ReplaceAll(t.intro, "{total}", strconv.Itoa(a.TotalReviews)),
		strings.ReplaceAll(t.sentiment, "{sentiment}", sentiment),
	}
	if len(a.Summary.Pros) > 0 {
		lines = append(lines, strings.ReplaceAll(t.pros, "{pros}", joinPhrases(a.Summary.Pros)))
	}
	if len(a.Summary.Cons) > 0 {
		lines = append(lines, strings.ReplaceAll(t.cons, "{cons}", joinPhrases(a.Summary.Cons)))
	}
	return strings.Join(lines, "\n"), nil
}

func joinPhrases(ps []PhraseCount) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Phrase
	}
	return strings.Join(out, ", ")
}
