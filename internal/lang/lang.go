// Package lang defines the content languages the storefront serves.
package lang

import (
	"strings"

	"github.com/wichananm65/storefront-ai/internal/apperror"
)

type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// Supported lists the languages in display order.
func Supported() []Language {
	return []Language{English, Hindi}
}

func (l Language) Valid() bool {
	return l == English || l == Hindi
}

// Parse accepts a language code case-insensitively. An empty string means
// English.
func Parse(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return English, nil
	}
	l := Language(s)
	if !l.Valid() {
		return "", apperror.Validation("Unsupported language: %s", s)
	}
	return l, nil
}
