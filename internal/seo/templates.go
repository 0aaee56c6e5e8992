package seo

import (
	"strings"

	"github.com/wichananm65/storefront-ai/internal/apperror"
	"github.com/wichananm65/storefront-ai/internal/lang"
)

type TemplateType string

const (
	TemplateDefault TemplateType = "default"
	TemplateSale    TemplateType = "sale"
	TemplateNew     TemplateType = "new"
)

func TemplateTypes() []TemplateType {
	return []TemplateType{TemplateDefault, TemplateSale, TemplateNew}
}

// ParseTemplateType accepts a template name case-insensitively; empty means default.
func ParseTemplateType(s string) (TemplateType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TemplateDefault, nil
	}
	for _, t := range TemplateTypes() {
		if TemplateType(s) == t {
			return t, nil
		}
	}
	return "", apperror.Validation("Unsupported template type: %s", s)
}

type template struct {
	title       string
	description string
}

type templateKey struct {
	lang lang.Language
	typ  TemplateType
}

// placeholders: {product_name} {brand} {category} {discount} {key_feature}
var templates = map[templateKey]template{
	{lang.English, TemplateDefault}: {
		title:       "{product_name} - {category} | BabyHub India",
		description: "Buy {brand} {product_name} for babies. ✓Best Price ✓Quality Assured ✓Fast Delivery across India. {key_feature}",
	},
	{lang.English, TemplateSale}: {
		title:       "{product_name} - {discount}% Off | BabyHub India",
		description: "Special Offer! Get {discount}% off on {brand} {product_name}. ✓Limited Time ✓Free Shipping ✓Genuine Products",
	},
	{lang.English, TemplateNew}: {
		title:       "New! {product_name} for Babies | BabyHub India",
		description: "New Arrival! {brand} {product_name} now available. {key_feature}. Shop now for best deals!",
	},
	{lang.Hindi, TemplateDefault}: {
		title:       "{product_name} - {category} | बेबीहब इंडिया",
		description: "{brand} {product_name} खरीदें। ✓बेस्ट प्राइस ✓गुणवत्ता की गारंटी ✓तेज डिलीवरी। {key_feature}",
	},
	{lang.Hindi, TemplateSale}: {
		title:       "{product_name} - {discount}% छूट | बेबीहब इंडिया",
		description: "स्पेशल ऑफर! {brand} {product_name} पर {discount}% की छूट। ✓सीमित समय ✓फ्री शिपिंग",
	},
	{lang.Hindi, TemplateNew}: {
		title:       "नया! बच्चों के लिए {product_name} | बेबीहब इंडिया",
		description: "नई आइटम! {brand} {product_name} अब उपलब्ध है। {key_feature}। अभी खरीदें!",
	},
}

var keywordTemplates = map[lang.Language][]string{
	lang.English: {
		"buy {product_name}",
		"baby {category}",
		"{brand} {category}",
		"{product_name} price",
		"best {category} for babies",
		"{product_name} online india",
	},
	lang.Hindi: {
		"{product_name} खरीदें",
		"बेबी {category}",
		"{brand} {category}",
		"{product_name} कीमत",
		"बच्चों के लिए {category}",
		"{product_name} ऑनलाइन",
	},
}

// categoryFeatures are selling points per category; the first one fills
// {key_feature} and all of them are appended to the keywords.
var categoryFeatures = map[string]map[lang.Language][]string{
	"Diapers": {
		lang.English: {"Super absorbent", "Leak protection", "Soft material"},
		lang.Hindi:   {"सुपर एब्जॉर्बेंट", "लीक प्रोटेक्शन", "सॉफ्ट मटीरियल"},
	},
	"Strollers": {
		lang.English: {"Easy fold", "Comfortable seat", "Storage basket"},
		lang.Hindi:   {"आसानी से फोल्ड", "आरामदायक सीट", "स्टोरेज बास्केट"},
	},
	"Toys": {
		lang.English: {"Educational", "Safe materials", "Age appropriate"},
		lang.Hindi:   {"शैक्षिक", "सुरक्षित सामग्री", "उम्र के अनुसार"},
	},
}
