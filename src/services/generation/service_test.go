package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(baseURL string) *Service {
	return &Service{
		apiKey:  "test-key",
		model:   "test-model",
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func completionReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func TestGenerateFormSchema(t *testing.T) {
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionReply(`{"title":"Apply","description":"Form","questions":[{"type":"paragraph","title":"Why us?","description":"","required":true}]}`)))
	}))
	defer srv.Close()

	svc := testService(srv.URL)
	schema, err := svc.GenerateFormSchema(context.Background(), "We need a data analyst")

	require.NoError(t, err)
	assert.Equal(t, "Apply", schema.Title)
	require.Len(t, schema.Questions, 1)
	assert.Equal(t, "paragraph", schema.Questions[0].Type)
	assert.True(t, schema.Questions[0].Required)

	// the user prompt must carry the no-email instruction
	require.Len(t, gotBody.Messages, 2)
	assert.Contains(t, gotBody.Messages[1].Content, "Do not ask for email")
	assert.Equal(t, "json_schema", gotBody.ResponseFormat.Type)
	assert.True(t, gotBody.ResponseFormat.JSONSchema.Strict)
}

func TestGenerateInterviewQuestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionReply(`{"questions":[{"questionNumber":1,"question":"Hello, I am your interviewer."},{"questionNumber":2,"question":"Why data analysis?"}]}`)))
	}))
	defer srv.Close()

	svc := testService(srv.URL)
	questions, err := svc.GenerateInterviewQuestions(context.Background(), "CV text here")

	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, 1, questions[0].QuestionNumber)
	assert.Equal(t, "Why data analysis?", questions[1].Question)
}

func TestGenerateReportTemplate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionReply(`{"categories":[{"category":"Communication","judging_criteria":"1 poor, 2 fair, 3 strong"}]}`)))
	}))
	defer srv.Close()

	svc := testService(srv.URL)
	tmpl, err := svc.GenerateReportTemplate(context.Background(), "Evaluate communication")

	require.NoError(t, err)
	require.Len(t, tmpl.Categories, 1)
	assert.Equal(t, "Communication", tmpl.Categories[0].Category)
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"rate_limit_error"}}`))
	}))
	defer srv.Close()

	svc := testService(srv.URL)
	_, err := svc.GenerateFormSchema(context.Background(), "anything")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
}
