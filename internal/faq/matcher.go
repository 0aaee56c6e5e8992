// Package faq answers customer questions from a fixed bilingual FAQ table
// using fuzzy matching with a keyword fallback.
package faq

import (
	"strings"
	"unicode/utf8"

	"github.com/wichananm65/storefront-ai/internal/apperror"
	"github.com/wichananm65/storefront-ai/internal/fuzzy"
	"github.com/wichananm65/storefront-ai/internal/lang"
)

const (
	// a fuzzy score must exceed this to count as a match
	matchThreshold    = 60
	keywordConfidence = 60
)

// Match methods, also used as metric labels.
const (
	MethodFuzzy   = "fuzzy"
	MethodKeyword = "keyword"
	MethodNone    = "none"
)

const noAnswer = "No answer found"

type Match struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Confidence int    `json:"confidence"`
	Method     string `json:"-"`
}

// Summary is an entry rendered in a single language.
type Summary struct {
	ID        string   `json:"id"`
	Questions []string `json:"questions"`
	Answer    string   `json:"answer"`
}

// Matcher is built once at startup; Add must not be called once requests
// are being served.
type Matcher struct {
	entries []Entry
	index   map[string]int
}

func NewMatcher(entries []Entry) (*Matcher, error) {
	m := &Matcher{index: map[string]int{}}
	for _, e := range entries {
		if err := m.Add(e); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Add appends e, or replaces the entry with the same ID in place.
func (m *Matcher) Add(e Entry) error {
	if strings.TrimSpace(e.ID) == "" {
		return apperror.Validation("faq id is required")
	}
	for l, qs := range e.Questions {
		if !l.Valid() {
			return apperror.Validation("faq %s: unsupported language %q", e.ID, l)
		}
		if len(qs) > 0 && e.Answer[l] == "" {
			return apperror.Validation("faq %s: missing %s answer", e.ID, l)
		}
	}

	if i, ok := m.index[e.ID]; ok {
		m.entries[i] = e
		return nil
	}
	m.index[e.ID] = len(m.entries)
	m.entries = append(m.entries, e)
	return nil
}

func (m *Matcher) Len() int { return len(m.entries) }

// Languages lists the supported languages.
func (m *Matcher) Languages() []lang.Language {
	return lang.Supported()
}

// Answer finds the FAQ closest to question. The best fuzzy score across all
// phrasings wins when it exceeds the threshold, the first phrasing winning
// ties. Otherwise the first phrasing containing a significant word of the
// question is returned with a fixed confidence. A miss is a NotFound error.
//
// The keyword fallback skips stop words and single characters rather than
// matching every input word as a substring, so a generic question such as
// "what is the weather" finds nothing.
func (m *Matcher) Answer(question string, l lang.Language) (Match, error) {
	if !l.Valid() {
		return Match{}, apperror.Validation("Unsupported language: %s", l)
	}

	clean := fuzzy.Normalize(question)
	var (
		best      Match
		bestScore int
	)
	for _, e := range m.entries {
		for _, q := range e.Questions[l] {
			score := fuzzy.Best(clean, fuzzy.Normalize(q))
			if score > bestScore && score > matchThreshold {
				bestScore = score
				best = Match{Question: q, Answer: e.Answer[l], Confidence: score, Method: MethodFuzzy}
			}
		}
	}
	if bestScore > 0 {
		return best, nil
	}

	keywords := significantWords(clean)
	if len(keywords) > 0 {
		for _, e := range m.entries {
			for _, q := range e.Questions[l] {
				cq := fuzzy.Normalize(q)
				for _, k := range keywords {
					if strings.Contains(cq, k) {
						return Match{Question: q, Answer: e.Answer[l], Confidence: keywordConfidence, Method: MethodKeyword}, nil
					}
				}
			}
		}
	}

	return Match{Method: MethodNone}, apperror.NotFound(noAnswer)
}

// All lists the FAQs that have content in language l.
func (m *Matcher) All(l lang.Language) ([]Summary, error) {
	if !l.Valid() {
		return nil, apperror.Validation("Unsupported language: %s", l)
	}
	out := make([]Summary, 0, len(m.entries))
	for _, e := range m.entries {
		qs, ok := e.Questions[l]
		if !ok {
			continue
		}
		out = append(out, Summary{ID: e.ID, Questions: append([]string(nil), qs...), Answer: e.Answer[l]})
	}
	return out, nil
}

// significantWords drops stop words and single characters, which would
// otherwise match nearly every phrasing.
func significantWords(s string) []string {
	var out []string
	for _, w := range fuzzy.Tokens(s) {
		if utf8.RuneCountInString(w) < 2 || fuzzy.IsStopWord(w) {
			continue
		}
		if _, ok := hindiStopWords[w]; ok {
			continue
		}
		out = append(out, w)
	}
	return out
}

var hindiStopWords = map[string]struct{}{
	"का": {}, "के": {}, "की": {}, "को": {}, "में": {}, "से": {}, "पर": {},
	"है": {}, "हैं": {}, "था": {}, "थे": {}, "हो": {}, "और": {}, "या": {},
	"क्या": {}, "कब": {}, "कैसे": {}, "कौन": {}, "सा": {}, "एक": {},
	"लिए": {}, "मैं": {}, "मेरे": {}, "मेरा": {}, "यह": {}, "वह": {},
	"भी": {}, "तो": {}, "ही": {}, "कि": {}, "जो": {},
}
