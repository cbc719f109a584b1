// Package recommend implements the course recommendation engine: a TF-IDF
// vectorizer over the course catalog, a cosine-similarity index, and
// education-level score boosting.
package recommend

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	apperrors "github.com/itech-institute/itech-site-go/internal/errors"
)

var (
	// ErrEmptyCorpus reports that indexing was attempted over a catalog
	// with no usable course text.
	ErrEmptyCorpus = apperrors.ErrInvalidCorpus

	// ErrNotFitted reports a Transform call before Fit.
	ErrNotFitted = errors.New("tfidf vectorizer not fitted")
)

// Vectorizer is a TF-IDF vectorizer. Fit builds the vocabulary and IDF
// values from a corpus; Transform then embeds arbitrary text into the
// fitted vector space. A Vectorizer is read-only after Fit and safe for
// concurrent Transform calls.
type Vectorizer struct {
	vocabulary   map[string]int
	idf          []float64
	dimension    int
	fitted       bool
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

// NewVectorizer creates an unfitted TF-IDF vectorizer.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		vocabulary:   make(map[string]int),
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		stopwords:    defaultStopwords(),
	}
}

// Fit builds the vocabulary and IDF values from the provided corpus.
func (v *Vectorizer) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return ErrEmptyCorpus
	}

	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range v.tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	// Stable term ordering keeps vector layout deterministic across rebuilds.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	if len(terms) == 0 {
		return ErrEmptyCorpus
	}

	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	v.dimension = len(terms)
	v.fitted = true
	return nil
}

// Dimension returns the dimensionality of the fitted vector space.
func (v *Vectorizer) Dimension() int { return v.dimension }

// Transform computes the L2-normalized TF-IDF vector for the given text.
// Text with no in-vocabulary tokens yields the zero vector.
func (v *Vectorizer) Transform(text string) ([]float64, error) {
	if !v.fitted {
		return nil, ErrNotFitted
	}

	vec := make([]float64, v.dimension)
	tf := make(map[int]int)
	total := 0
	for _, tok := range v.tokenize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}

	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * v.idf[idx]
	}

	// L2 normalize
	l2 := 0.0
	for _, x := range vec {
		l2 += x * x
	}
	l2 = math.Sqrt(l2)
	if l2 > 0 {
		for i := range vec {
			vec[i] /= l2
		}
	}
	return vec, nil
}

func (v *Vectorizer) tokenize(text string) []string {
	lower := strings.ToLower(norm.NFKC.String(text))
	raw := v.tokenPattern.FindAllString(lower, -1)
	if len(raw) == 0 {
		return nil
	}
	out := raw[:0]
	for _, t := range raw {
		if _, isStop := v.stopwords[t]; isStop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// cosine returns the dot product of two vectors. Both sides are
// L2-normalized by Transform, so the dot product is cosine similarity.
func cosine(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
