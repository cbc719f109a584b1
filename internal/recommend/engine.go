package recommend

import (
	"sort"
	"strings"

	"github.com/itech-institute/itech-site-go/internal/catalog"
)

// Suitability labels attached to ranked courses.
const (
	SuitabilityGreatFit   = "Great fit"
	SuitabilityGoodOption = "Good option"
)

// greatFitThreshold is exclusive: a boosted score must exceed it to be
// labeled a great fit.
const greatFitThreshold = 0.5

// educationBoosts maps a fragment of the stated education level to tag
// keywords that mark a course as appropriate for that level. Every group
// whose fragment appears in the education level and whose keywords hit
// the course tags multiplies the score by boostFactor.
var educationBoosts = []struct {
	fragment string
	keywords []string
}{
	{"high school", []string{"highschool", "10th", "12th", "school", "beginner"}},
	{"diploma", []string{"diploma", "after10th", "after12th"}},
	{"bachelor", []string{"graduate", "bachelor", "degree"}},
	{"master", []string{"postgraduate", "master"}},
	{"phd", []string{"phd", "doctorate", "research"}},
}

const boostFactor = 1.5

// Recommendation is a single ranked course with its similarity score and
// a human-readable suitability label.
type Recommendation struct {
	CourseID    int     `json:"course_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Fee         int     `json:"fee"`
	Score       float64 `json:"score"`
	Suitability string  `json:"suitability"`
}

// Engine ranks catalog courses against a free-text user profile.
type Engine struct {
	index *Index
}

// NewEngine builds a recommendation engine over the given catalog.
func NewEngine(courses []catalog.Course) (*Engine, error) {
	index, err := BuildIndex(courses)
	if err != nil {
		return nil, err
	}
	return &Engine{index: index}, nil
}

// IndexSize returns the number of indexed courses.
func (e *Engine) IndexSize() int { return e.index.Len() }

// Similar exposes course-to-course similarity lookups from the index.
func (e *Engine) Similar(courseID, limit int) []int {
	return e.index.Similar(courseID, limit)
}

// Recommend ranks courses by cosine similarity between the profile text
// and each course, boosts courses matching the stated education level,
// and returns the top n. Courses that score exactly zero are still
// eligible; callers decide whether an all-zero result is worth showing.
func (e *Engine) Recommend(profile, educationLevel string, n int) ([]Recommendation, error) {
	if n <= 0 {
		return nil, nil
	}

	profileVec, err := e.index.vectorizer.Transform(profile)
	if err != nil {
		return nil, err
	}

	level := strings.ToLower(educationLevel)
	scored := make([]Recommendation, 0, len(e.index.docs))
	for i, doc := range e.index.docs {
		score := cosine(profileVec, doc.vector)
		score = applyEducationBoost(score, level, doc.tags)

		course := e.index.courses[i]
		rec := Recommendation{
			CourseID:    course.ID,
			Title:       course.Title,
			Description: course.Description,
			Duration:    course.Duration,
			Fee:         course.Fee,
			Score:       score,
		}
		rec.Suitability = suitabilityFor(score)
		scored = append(scored, rec)
	}

	// Stable sort so that equal scores keep catalog order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if n > len(scored) {
		n = len(scored)
	}
	return scored[:n], nil
}

// suitabilityFor labels a boosted score. The threshold is exclusive, so
// a score of exactly 0.5 is still only a good option.
func suitabilityFor(score float64) string {
	if score > greatFitThreshold {
		return SuitabilityGreatFit
	}
	return SuitabilityGoodOption
}

// applyEducationBoost multiplies the score by boostFactor once per
// education group that matches both the stated level and the course tags.
// Matching groups compound.
func applyEducationBoost(score float64, level, tags string) float64 {
	if level == "" {
		return score
	}
	for _, boost := range educationBoosts {
		if !strings.Contains(level, boost.fragment) {
			continue
		}
		for _, keyword := range boost.keywords {
			if strings.Contains(tags, keyword) {
				score *= boostFactor
				break
			}
		}
	}
	return score
}
