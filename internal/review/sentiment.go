package review

import (
	"github.com/wichananm65/storefront-ai/internal/fuzzy"
)

const (
	// how far back a negator or intensifier may sit from its word
	modifierWindow = 3
	negationFactor = -0.5
)

// Polarity scores text in [-1, 1]. Each valenced word is scaled by
// preceding intensifiers and flipped by a preceding negator; the result is
// the mean over valenced words, or 0 when there are none.
func Polarity(text string) float64 {
	toks := fuzzy.Tokens(text)

	var (
		sum   float64
		count int
	)
	for i, t := range toks {
		v, ok := valence[t]
		if !ok {
			continue
		}
		for j := i - 1; j >= 0 && j >= i-modifierWindow; j-- {
			if _, isValenced := valence[toks[j]]; isValenced {
				break
			}
			if f, ok := intensifiers[toks[j]]; ok {
				v *= f
			}
			if _, ok := negators[toks[j]]; ok {
				v *= negationFactor
			}
		}
		// Hindi places the negation after the word: "अच्छा नहीं है"
		for j := i + 1; j < len(toks) && j <= i+2; j++ {
			if _, ok := postNegators[toks[j]]; ok {
				v *= negationFactor
				break
			}
		}
		sum += clamp(v)
		count++
	}
	if count == 0 {
		return 0
	}
	return clamp(sum / float64(count))
}

func clamp(v float64) float64 {
	return max(-1, min(1, v))
}
