// Package recommend suggests similar catalog products using TF-IDF cosine
// similarity over each product's text fields.
package recommend

import (
	"errors"
	"sort"
	"strings"

	"github.com/wichananm65/storefront-ai/internal/catalog"
	"github.com/wichananm65/storefront-ai/internal/logging"
)

const DefaultLimit = 3

var ErrEmptyCatalog = errors.New("recommend: catalog is empty")

// Recommender holds the similarity matrix for a fixed product list. It is
// read-only after New and safe for concurrent use.
type Recommender struct {
	products []catalog.Product
	index    map[catalog.ProductID]int
	sim      [][]float64
}

// New vectorizes name, description, category and brand of every product
// and precomputes the pairwise similarity matrix.
func New(products []catalog.Product) (*Recommender, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	docs := make([]string, len(products))
	index := make(map[catalog.ProductID]int, len(products))
	for i, p := range products {
		docs[i] = strings.Join([]string{p.Name, p.Description, p.Category, p.Brand}, " ")
		if _, dup := index[p.ID]; !dup {
			index[p.ID] = i
		}
	}

	ps := make([]catalog.Product, len(products))
	copy(ps, products)
	return &Recommender{
		products: ps,
		index:    index,
		sim:      similarityMatrix(tfidf(docs)),
	}, nil
}

// Len is the number of indexed products.
func (r *Recommender) Len() int { return len(r.products) }

// Recommend returns up to k products most similar to id, best first, ties
// in catalog order. The product itself is never included. Unknown ids and
// internal faults yield an empty slice.
func (r *Recommender) Recommend(id catalog.ProductID, k int) (out []catalog.Product) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.Error().Interface("panic", rec).Str("product_id", id.String()).Msg("recommendation failed")
			out = []catalog.Product{}
		}
	}()

	row, ok := r.index[id]
	if !ok || k <= 0 {
		return []catalog.Product{}
	}

	candidates := make([]int, 0, len(r.products)-1)
	for i, p := range r.products {
		if p.ID != id {
			candidates = append(candidates, i)
		}
	}
	scores := r.sim[row]
	sort.SliceStable(candidates, func(a, b int) bool {
		return scores[candidates[a]] > scores[candidates[b]]
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	out = make([]catalog.Product, len(candidates))
	for i, idx := range candidates {
		out[i] = r.products[idx]
	}
	return out
}
