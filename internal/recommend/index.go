package recommend

import (
	"sort"
	"strings"

	"github.com/itech-institute/itech-site-go/internal/catalog"
)

// tagExpansions maps a lowercase title fragment to extra searchable tags.
// The fragments widen sparse course titles so that common phrasings like
// "coding" or "AI" still land on the right course.
var tagExpansions = []struct {
	fragment string
	extra    string
}{
	{"programming", "coding software developer programming"},
	{"development", "coding software developer programming"},
	{"design", "creative art graphics"},
	{"data", "analytics machine learning AI"},
	{"account", "finance accounting business"},
	{"tally", "finance accounting business"},
	{"typing", "office clerical data entry"},
	{"digital marketing", "marketing SEO social media advertising"},
	{"hardware", "IT hardware networking troubleshooting"},
	{"networking", "IT hardware networking troubleshooting"},
}

// deriveTags builds the searchable tag string for a course: its lowercase
// title and description plus expansion tags triggered by title fragments.
// Each expansion group is appended at most once.
func deriveTags(course catalog.Course) string {
	title := strings.ToLower(course.Title)

	var b strings.Builder
	b.WriteString(title)
	b.WriteString(" ")
	b.WriteString(strings.ToLower(course.Description))

	added := make(map[string]struct{}, len(tagExpansions))
	for _, exp := range tagExpansions {
		if !strings.Contains(title, exp.fragment) {
			continue
		}
		if _, ok := added[exp.extra]; ok {
			continue
		}
		added[exp.extra] = struct{}{}
		b.WriteString(" ")
		b.WriteString(exp.extra)
	}
	return b.String()
}

// document is an indexed course: its identity, derived tags, and the
// TF-IDF vector of its combined text.
type document struct {
	courseID int
	tags     string
	vector   []float64
}

// Index is the fitted recommendation index over the course catalog.
// It is immutable after Build and safe for concurrent use.
type Index struct {
	vectorizer *Vectorizer
	docs       []document
	courses    []catalog.Course
}

// BuildIndex fits a TF-IDF vectorizer over the catalog and embeds every
// course. Courses keep their input order, so equal-score ranking ties
// resolve to the earlier catalog entry.
func BuildIndex(courses []catalog.Course) (*Index, error) {
	if len(courses) == 0 {
		return nil, ErrEmptyCorpus
	}

	tags := make([]string, len(courses))
	contents := make([]string, len(courses))
	for i, course := range courses {
		tags[i] = deriveTags(course)
		contents[i] = course.Title + " " + course.Description + " " + tags[i]
	}

	vectorizer := NewVectorizer()
	if err := vectorizer.Fit(contents); err != nil {
		return nil, err
	}

	docs := make([]document, len(courses))
	for i := range courses {
		vec, err := vectorizer.Transform(contents[i])
		if err != nil {
			return nil, err
		}
		docs[i] = document{
			courseID: courses[i].ID,
			tags:     tags[i],
			vector:   vec,
		}
	}

	return &Index{
		vectorizer: vectorizer,
		docs:       docs,
		courses:    courses,
	}, nil
}

// Len returns the number of indexed courses.
func (ix *Index) Len() int { return len(ix.docs) }

// Similar returns the ids of up to limit courses most similar to the
// course with the given id, excluding the course itself. It returns nil
// when the id is not indexed.
func (ix *Index) Similar(courseID, limit int) []int {
	var base []float64
	for _, doc := range ix.docs {
		if doc.courseID == courseID {
			base = doc.vector
			break
		}
	}
	if base == nil || limit <= 0 {
		return nil
	}

	type scored struct {
		id    int
		score float64
	}
	candidates := make([]scored, 0, len(ix.docs)-1)
	for _, doc := range ix.docs {
		if doc.courseID == courseID {
			continue
		}
		candidates = append(candidates, scored{id: doc.courseID, score: cosine(base, doc.vector)})
	}
	// Stable sort keeps catalog order on score ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > len(candidates) {
		limit = len(candidates)
	}
	ids := make([]int, limit)
	for i := 0; i < limit; i++ {
		ids[i] = candidates[i].id
	}
	return ids
}
