package generation

import (
	"testing"

	"Backend-AIInterviewer/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFormRequests(t *testing.T) {
	schema := &models.FormSchema{
		Title:       "Data Analyst Application",
		Description: "Apply here",
		Questions: []models.FormQuestion{
			{Type: "text", Title: "Years of experience", Description: "Whole number", Required: true},
			{Type: "paragraph", Title: "Tell us about yourself", Description: "", Required: false},
		},
	}

	requests := BuildFormRequests(schema)
	require.Len(t, requests, 3)

	t.Run("EmailQuestionComesFirst", func(t *testing.T) {
		item := requests[0].CreateItem.Item
		assert.Equal(t, "Email", item.Title)
		assert.True(t, item.QuestionItem.Question.Required)
		assert.NotNil(t, item.QuestionItem.Question.TextQuestion)
		assert.False(t, item.QuestionItem.Question.TextQuestion.Paragraph)
		assert.Equal(t, int64(0), requests[0].CreateItem.Location.Index)
	})

	t.Run("GeneratedQuestionsShiftByOne", func(t *testing.T) {
		first := requests[1].CreateItem
		assert.Equal(t, "Years of experience", first.Item.Title)
		assert.True(t, first.Item.QuestionItem.Question.Required)
		assert.False(t, first.Item.QuestionItem.Question.TextQuestion.Paragraph)
		assert.Equal(t, int64(1), first.Location.Index)

		second := requests[2].CreateItem
		assert.Equal(t, "Tell us about yourself", second.Item.Title)
		assert.False(t, second.Item.QuestionItem.Question.Required)
		assert.True(t, second.Item.QuestionItem.Question.TextQuestion.Paragraph)
		assert.Equal(t, int64(2), second.Location.Index)
	})
}
