// Package seo fills title, description and keyword templates for product pages.
package seo

import (
	"strconv"
	"strings"

	"github.com/wichananm65/storefront-ai/internal/apperror"
	"github.com/wichananm65/storefront-ai/internal/catalog"
	"github.com/wichananm65/storefront-ai/internal/lang"
)

const (
	MaxTitleLength       = 60
	MaxDescriptionLength = 160
)

// Result is the page metadata. Field order matches the response body.
type Result struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Keywords           string `json:"keywords"`
	OGTitle            string `json:"og:title"`
	OGDescription      string `json:"og:description"`
	OGType             string `json:"og:type"`
	OGImage            string `json:"og:image"`
	TwitterCard        string `json:"twitter:card"`
	TwitterTitle       string `json:"twitter:title"`
	TwitterDescription string `json:"twitter:description"`
	TwitterImage       string `json:"twitter:image"`
}

// Generate renders metadata for p. Unknown languages or template types are
// validation errors.
func Generate(p catalog.Product, l lang.Language, typ TemplateType) (Result, error) {
	tmpl, ok := templates[templateKey{l, typ}]
	if !ok {
		if !l.Valid() {
			return Result{}, apperror.Validation("Unsupported language: %s", l)
		}
		return Result{}, apperror.Validation("Unsupported template type: %s", typ)
	}

	features := categoryFeatures[p.Category][l]
	keyFeature := ""
	if len(features) > 0 {
		keyFeature = features[0]
	}
	discount := ""
	if p.Discount != nil {
		discount = strconv.FormatFloat(*p.Discount, 'f', -1, 64)
	}
	r := strings.NewReplacer(
		"{product_name}", p.Name,
		"{brand}", p.Brand,
		"{category}", p.Category,
		"{discount}", discount,
		"{key_feature}", keyFeature,
	)

	keywords := make([]string, 0, len(keywordTemplates[l])+len(features))
	for _, k := range keywordTemplates[l] {
		keywords = append(keywords, r.Replace(k))
	}
	keywords = append(keywords, features...)

	title := truncate(r.Replace(tmpl.title), MaxTitleLength)
	description := truncate(r.Replace(tmpl.description), MaxDescriptionLength)
	return Result{
		Title:              title,
		Description:        description,
		Keywords:           strings.Join(keywords, ", "),
		OGTitle:            title,
		OGDescription:      description,
		OGType:             "product",
		OGImage:            p.Image,
		TwitterCard:        "product",
		TwitterTitle:       title,
		TwitterDescription: description,
		TwitterImage:       p.Image,
	}, nil
}

// truncate limits s to limit runes, replacing the tail with "..." when cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
