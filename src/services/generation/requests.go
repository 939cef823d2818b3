package generation

import (
	"Backend-AIInterviewer/src/models"

	"google.golang.org/api/forms/v1"
)

// BuildFormRequests converts a generated schema to form-service createItem
// requests. The required Email question always lands at index 0; the sync
// pipeline resolves the notification recipient from that answer.
func BuildFormRequests(schema *models.FormSchema) []*forms.Request {
	requests := []*forms.Request{
		{
			CreateItem: &forms.CreateItemRequest{
				Item: &forms.Item{
					Title:       "Email",
					Description: "Please enter your email address",
					QuestionItem: &forms.QuestionItem{
						Question: &forms.Question{
							Required:     true,
							TextQuestion: &forms.TextQuestion{},
						},
					},
				},
				Location: &forms.Location{Index: 0, ForceSendFields: []string{"Index"}},
			},
		},
	}

	for i, q := range schema.Questions {
		question := &forms.Question{
			Required:     q.Required,
			TextQuestion: &forms.TextQuestion{},
		}
		if q.Type == "paragraph" {
			question.TextQuestion.Paragraph = true
		}

		requests = append(requests, &forms.Request{
			CreateItem: &forms.CreateItemRequest{
				Item: &forms.Item{
					Title:       q.Title,
					Description: q.Description,
					QuestionItem: &forms.QuestionItem{
						Question: question,
					},
				},
				// index 0 is the email question
				Location: &forms.Location{Index: int64(i + 1)},
			},
		})
	}

	return requests
}
