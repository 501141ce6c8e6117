package request_models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaults(t *testing.T) {
	form := QuizForm{}
	form.Normalize()

	assert.Equal(t, "birthday", form.Occasion)
	assert.Equal(t, "friend", form.Relationship)
	assert.Equal(t, "25-34", form.AgeRange)
	assert.Equal(t, 0, form.BudgetMin)
	assert.Equal(t, 100, form.BudgetMax)
	assert.NotNil(t, form.Interests)
	assert.NotNil(t, form.DailyLife)
	assert.NotNil(t, form.AvoidList)
}

func TestNormalizeBudgetClamps(t *testing.T) {
	form := QuizForm{BudgetMin: -5, BudgetMax: 20000}
	form.Normalize()
	assert.Equal(t, 0, form.BudgetMin)
	assert.Equal(t, BudgetCap, form.BudgetMax)

	form = QuizForm{BudgetMin: 80, BudgetMax: 30}
	form.Normalize()
	assert.Equal(t, 80, form.BudgetMin)
	assert.Equal(t, 80, form.BudgetMax, "max is raised to min, never below it")
}

func TestNormalizeTruncatesNotes(t *testing.T) {
	form := QuizForm{Notes: strings.Repeat("x", NotesMaxLen+50)}
	form.Normalize()
	assert.Len(t, form.Notes, NotesMaxLen)
}

func TestNormalizeKeepsProvidedValues(t *testing.T) {
	form := QuizForm{
		Occasion:     "graduation",
		Relationship: "sibling",
		AgeRange:     "18-24",
		BudgetMin:    10,
		BudgetMax:    60,
		Interests:    []string{"music"},
	}
	form.Normalize()

	assert.Equal(t, "graduation", form.Occasion)
	assert.Equal(t, "sibling", form.Relationship)
	assert.Equal(t, 10, form.BudgetMin)
	assert.Equal(t, 60, form.BudgetMax)
	assert.Equal(t, []string{"music"}, form.Interests)
}
