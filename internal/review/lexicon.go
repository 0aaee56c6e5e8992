package review

import "github.com/wichananm65/storefront-ai/internal/lang"

// phraseLexicon decides which phrases are worth reporting as pros or cons.
var phraseLexicon = map[lang.Language]struct{ positive, negative []string }{
	lang.English: {
		positive: []string{"good", "great", "excellent", "perfect", "comfortable", "quality", "recommend", "best", "love", "amazing"},
		negative: []string{"bad", "poor", "uncomfortable", "expensive", "difficult", "hard", "waste", "disappointed", "broken", "cheap"},
	},
	lang.Hindi: {
		positive: []string{"अच्छा", "बढ़िया", "उत्कृष्ट", "सही", "आरामदायक", "गुणवत्ता", "सिफारिश", "बेस्ट", "पसंद", "शानदार"},
		negative: []string{"खराब", "घटिया", "असुविधाजनक", "महंगा", "मुश्किल", "कठिन", "बेकार", "निराश", "टूटा", "सस्ता"},
	},
}

// valence scores individual words in [-1, 1] for polarity.
var valence = map[string]float64{
	// en
	"good": 0.7, "great": 0.8, "excellent": 1, "perfect": 1, "comfortable": 0.4,
	"recommend": 0.4, "recommended": 0.4, "best": 1, "love": 0.5, "loved": 0.7,
	"amazing": 0.6, "awesome": 1, "nice": 0.6, "happy": 0.8, "fantastic": 0.4,
	"wonderful": 1, "soft": 0.1, "easy": 0.43, "sturdy": 0.4, "worth": 0.3,
	"bad": -0.7, "poor": -0.4, "uncomfortable": -0.5, "expensive": -0.5,
	"difficult": -0.5, "hard": -0.3, "waste": -0.2, "disappointed": -0.75,
	"disappointing": -0.6, "broken": -0.4, "cheap": -0.2, "terrible": -1,
	"awful": -1, "worst": -1, "useless": -0.5, "flimsy": -0.5, "leaks": -0.3,
	// hi
	"अच्छा": 0.7, "अच्छी": 0.7, "अच्छे": 0.7, "बढ़िया": 0.8, "उत्कृष्ट": 1,
	"सही": 0.4, "आरामदायक": 0.4, "सिफारिश": 0.4, "बेस्ट": 1, "पसंद": 0.5,
	"शानदार": 0.8, "मजबूत": 0.4,
	"खराब": -0.7, "घटिया": -0.8, "असुविधाजनक": -0.5, "महंगा": -0.5,
	"मुश्किल": -0.5, "कठिन": -0.5, "बेकार": -0.7, "निराश": -0.75, "टूटा": -0.4,
	"सस्ता": -0.2,
}

// intensifiers scale the next valenced word.
var intensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "extremely": 1.5, "so": 1.2, "super": 1.3,
	"too": 1.2, "absolutely": 1.5, "highly": 1.3,
	"बहुत": 1.3, "काफी": 1.2, "बेहद": 1.5, "बिल्कुल": 1.5,
}

// negators flip and dampen the next valenced word. Contractions arrive
// split, so "don't" is seen as "don" followed by "t".
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "don": {}, "doesn": {}, "didn": {},
	"isn": {}, "wasn": {}, "aren": {}, "weren": {}, "won": {}, "cannot": {},
	"hardly": {}, "नहीं": {}, "न": {}, "मत": {},
}

var postNegators = map[string]struct{}{"नहीं": {}, "न": {}}
