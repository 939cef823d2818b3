package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"Backend-AIInterviewer/src/models"

	"github.com/google/uuid"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-2024-08-06"
)

// Service calls the completion API to synthesize the form schema, interview
// script, and scoring rubric from the operator's free-text requirements.
type Service struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewFromEnv() (*Service, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("missing OPENAI_API_KEY")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Service{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// GenerateFormSchema produces the application-form layout. The schema forbids
// an email question; the converter adds the mandatory one itself.
func (s *Service) GenerateFormSchema(ctx context.Context, reqs string) (*models.FormSchema, error) {
	userPrompt := reqs + ". Do not ask for email in the application form."

	var schema models.FormSchema
	err := s.complete(ctx, "google_forms_schema", formSchemaSystemPrompt, userPrompt, formSchemaJSONSchema(), &schema)
	if err != nil {
		return nil, err
	}
	return &schema, nil
}

// GenerateInterviewQuestions produces the ten-step interview script.
func (s *Service) GenerateInterviewQuestions(ctx context.Context, reqs string) ([]models.InterviewQuestion, error) {
	var out struct {
		Questions []models.InterviewQuestion `json:"questions"`
	}
	err := s.complete(ctx, "interview_questions_schema", interviewQuestionsSystemPrompt, reqs, interviewQuestionsJSONSchema(), &out)
	if err != nil {
		return nil, err
	}
	return out.Questions, nil
}

// GenerateReportTemplate produces the candidate scoring rubric.
func (s *Service) GenerateReportTemplate(ctx context.Context, reqs string) (*models.ReportTemplate, error) {
	var tmpl models.ReportTemplate
	err := s.complete(ctx, "report_template_schema", reportTemplateSystemPrompt, reqs, reportTemplateJSONSchema(), &tmpl)
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type       string     `json:"type"`
	JSONSchema jsonSchema `json:"json_schema"`
}

type jsonSchema struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// complete posts one chat completion with a strict JSON response format and
// decodes the reply content into out.
func (s *Service) complete(ctx context.Context, schemaName, systemPrompt, userPrompt string, schema map[string]any, out any) error {
	reqID := uuid.NewString()
	start := time.Now()

	body := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: responseFormat{
			Type: "json_schema",
			JSONSchema: jsonSchema{
				Name:   schemaName,
				Strict: true,
				Schema: schema,
			},
		},
	}

	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("completion request failed: %w", err)
	}
	defer res.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("decode completion response: %w", err)
	}

	if parsed.Error != nil {
		return fmt.Errorf("completion API error: %s", parsed.Error.Message)
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("completion API returned status %s", res.Status)
	}
	if len(parsed.Choices) == 0 {
		return errors.New("completion API returned no choices")
	}

	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), out); err != nil {
		return fmt.Errorf("parse %s content: %w", schemaName, err)
	}

	log.Printf("✅ [generation] %s req=%s took %v", schemaName, reqID, time.Since(start))
	return nil
}
