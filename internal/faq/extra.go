package faq

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/wichananm65/storefront-ai/internal/lang"
)

type extraEntry struct {
	ID        string              `koanf:"id"`
	Questions map[string][]string `koanf:"questions"`
	Answer    map[string]string   `koanf:"answer"`
}

// LoadExtra reads additional FAQ entries from a YAML file:
//
//	faqs:
//	  - id: bottle_sterilize
//	    questions:
//	      en: ["How do I sterilize bottles?"]
//	    answer:
//	      en: "Boil them for five minutes."
func LoadExtra(path string) ([]Entry, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load faq file %s: %w", path, err)
	}

	var raw []extraEntry
	if err := k.Unmarshal("faqs", &raw); err != nil {
		return nil, fmt.Errorf("parse faq file %s: %w", path, err)
	}

	out := make([]Entry, 0, len(raw))
	for _, r := range raw {
		e := Entry{
			ID:        r.ID,
			Questions: make(map[lang.Language][]string, len(r.Questions)),
			Answer:    make(map[lang.Language]string, len(r.Answer)),
		}
		for l, qs := range r.Questions {
			e.Questions[lang.Language(l)] = qs
		}
		for l, a := range r.Answer {
			e.Answer[lang.Language(l)] = a
		}
		out = append(out, e)
	}
	return out, nil
}
