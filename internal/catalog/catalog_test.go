package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourses_IDsAreUniqueAndStable(t *testing.T) {
	courses := Courses()
	require.NotEmpty(t, courses)

	seen := make(map[int]string, len(courses))
	for _, c := range courses {
		previous, dup := seen[c.ID]
		assert.Falsef(t, dup, "id %d used by both %q and %q", c.ID, previous, c.Title)
		seen[c.ID] = c.Title

		assert.NotEmpty(t, c.Title, "course %d has no title", c.ID)
		assert.NotEmpty(t, c.Description, "course %d has no description", c.ID)
		assert.NotEmpty(t, c.Duration, "course %d has no duration", c.ID)
		assert.Positive(t, c.Fee, "course %d has no fee", c.ID)
	}
}

func TestCourseByID(t *testing.T) {
	course, ok := CourseByID(3)
	require.True(t, ok)
	assert.Equal(t, "Python Programming", course.Title)

	_, ok = CourseByID(99999)
	assert.False(t, ok)
}

func TestIntents_TagsAreUniqueWithPatternsAndResponses(t *testing.T) {
	intents := Intents()
	require.NotEmpty(t, intents)

	seen := make(map[string]bool, len(intents))
	for _, intent := range intents {
		assert.Falsef(t, seen[intent.Tag], "duplicate tag %q", intent.Tag)
		seen[intent.Tag] = true

		assert.NotEmptyf(t, intent.Patterns, "intent %q has no patterns", intent.Tag)
		assert.NotEmptyf(t, intent.Responses, "intent %q has no responses", intent.Tag)
	}

	// Tags the chat service dispatches on must exist.
	for _, tag := range []string{IntentGreeting, IntentGoodbye, IntentRecommendation} {
		assert.Truef(t, seen[tag], "missing intent %q", tag)
	}
}
