package recommend

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/wichananm65/storefront-ai/internal/fuzzy"
)

// term is one non-zero component of a sparse vector.
type term struct {
	index  int
	weight float64
}

// vector is sorted by index so dot products are deterministic.
type vector []term

// analyze keeps tokens of at least two word characters that are not stop words.
func analyze(text string) []string {
	toks := fuzzy.Tokens(text)
	out := toks[:0]
	for _, t := range toks {
		if utf8.RuneCountInString(t) < 2 || fuzzy.IsStopWord(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// tfidf vectorizes docs with smoothed idf, ln((1+n)/(1+df)) + 1, and L2
// normalisation. Documents with no usable terms get an empty vector.
func tfidf(docs []string) []vector {
	tokenized := make([][]string, len(docs))
	df := map[string]int{}
	for i, d := range docs {
		tokenized[i] = analyze(d)
		seen := map[string]bool{}
		for _, t := range tokenized[i] {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	vocab := make([]string, 0, len(df))
	for t := range df {
		vocab = append(vocab, t)
	}
	sort.Strings(vocab)
	index := make(map[string]int, len(vocab))
	idf := make([]float64, len(vocab))
	n := float64(len(docs))
	for i, t := range vocab {
		index[t] = i
		idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	out := make([]vector, len(docs))
	for i, toks := range tokenized {
		counts := map[int]float64{}
		for _, t := range toks {
			counts[index[t]]++
		}
		v := make(vector, 0, len(counts))
		var norm float64
		for idx, c := range counts {
			w := c * idf[idx]
			v = append(v, term{index: idx, weight: w})
			norm += w * w
		}
		sort.Slice(v, func(a, b int) bool { return v[a].index < v[b].index })
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range v {
				v[j].weight /= norm
			}
		}
		out[i] = v
	}
	return out
}

// cosine of two L2-normalised vectors is their dot product.
func cosine(a, b vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].index == b[j].index:
			sum += a[i].weight * b[j].weight
			i++
			j++
		case a[i].index < b[j].index:
			i++
		default:
			j++
		}
	}
	return sum
}

// similarityMatrix computes all pairwise cosine similarities.
func similarityMatrix(vecs []vector) [][]float64 {
	m := make([][]float64, len(vecs))
	for i := range m {
		m[i] = make([]float64, len(vecs))
	}
	for i := range vecs {
		for j := i; j < len(vecs); j++ {
			s := cosine(vecs[i], vecs[j])
			m[i][j] = s
			m[j][i] = s
		}
	}
	return m
}
