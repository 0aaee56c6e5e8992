package validation

import (
	"strings"
	"testing"

	"github.com/wichananm65/storefront-ai/internal/apperror"
)

type sample struct {
	Question string `json:"question" validate:"required"`
	Language string `json:"language" validate:"oneof=en hi"`
	Quality  int    `json:"quality" validate:"min=1,max=100"`
}

func TestStruct(t *testing.T) {
	if err := Struct(&sample{Question: "q", Language: "en", Quality: 85}); err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}

	err := Struct(&sample{Language: "fr", Quality: 0})
	if !apperror.Is(err, apperror.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"question is required", "language must be one of [en hi]", "quality must be at least 1"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}
