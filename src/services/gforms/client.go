package gforms

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"Backend-AIInterviewer/src/models"

	"google.golang.org/api/forms/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// The sync engine treats both of these as recoverable for the current cycle:
// log, skip the form, retry on the next tick.
var (
	ErrUpstreamUnavailable = errors.New("form service unavailable")
	ErrFormNotFound        = errors.New("form not found upstream")
)

// Client wraps the Google Forms API for form creation and response polling.
type Client struct {
	service *forms.Service
}

func New(service *forms.Service) *Client {
	return &Client{service: service}
}

// NewService builds the shared forms.Service from GOOGLE_APPLICATION_CREDENTIALS.
// Created once at startup and injected; never re-dialed per cycle.
func NewService(ctx context.Context) (*forms.Service, error) {
	credsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credsFile == "" {
		credsFile = "creds.json"
	}

	svc, err := forms.NewService(ctx,
		option.WithCredentialsFile(credsFile),
		option.WithScopes(
			forms.FormsBodyScope,
			forms.FormsResponsesReadonlyScope,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("init forms service: %w", err)
	}
	return svc, nil
}

// CreateForm creates an empty form and returns its id and editor URL.
func (c *Client) CreateForm(ctx context.Context, title string) (formID, formURL string, err error) {
	f, err := c.service.Forms.Create(&forms.Form{
		Info: &forms.Info{Title: title},
	}).Context(ctx).Do()
	if err != nil {
		return "", "", wrapAPIError(err)
	}
	return f.FormId, "https://docs.google.com/forms/d/" + f.FormId + "/edit", nil
}

// ApplyRequests pushes a batch of item updates onto an existing form.
func (c *Client) ApplyRequests(ctx context.Context, formID string, requests []*forms.Request) error {
	_, err := c.service.Forms.BatchUpdate(formID, &forms.BatchUpdateFormRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return wrapAPIError(err)
	}
	return nil
}

// FetchQuestionTitles returns the questionId → item title map for a form.
func (c *Client) FetchQuestionTitles(ctx context.Context, formID string) (map[string]string, error) {
	f, err := c.service.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError(err)
	}

	titles := map[string]string{}
	for _, item := range f.Items {
		if item.QuestionItem != nil && item.QuestionItem.Question != nil {
			titles[item.QuestionItem.Question.QuestionId] = item.Title
		}
	}
	return titles, nil
}

// FetchResponses lists every submitted response for a form, following pages.
func (c *Client) FetchResponses(ctx context.Context, formID string) ([]models.RawResponse, error) {
	var raw []*forms.FormResponse
	err := c.service.Forms.Responses.
		List(formID).
		Pages(ctx, func(resp *forms.ListFormResponsesResponse) error {
			raw = append(raw, resp.Responses...)
			return nil
		})
	if err != nil {
		return nil, wrapAPIError(err)
	}

	out := make([]models.RawResponse, 0, len(raw))
	for _, r := range raw {
		submitted, parseErr := time.Parse(time.RFC3339Nano, r.CreateTime)
		if parseErr != nil {
			log.Printf("⚠️ [gforms] unparsable createTime %q for responseId=%s, keeping zero time", r.CreateTime, r.ResponseId)
		}

		answers := map[string][]string{}
		for questionID, answer := range r.Answers {
			if answer.TextAnswers == nil {
				continue
			}
			values := make([]string, 0, len(answer.TextAnswers.Answers))
			for _, ta := range answer.TextAnswers.Answers {
				values = append(values, ta.Value)
			}
			answers[questionID] = values
		}

		out = append(out, models.RawResponse{
			ResponseID:    r.ResponseId,
			SubmittedTime: submitted,
			Answers:       answers,
		})
	}
	return out, nil
}

// wrapAPIError maps a transport error onto the two failure kinds callers
// distinguish: a vanished form vs. everything else.
func wrapAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone {
			return fmt.Errorf("%w: %v", ErrFormNotFound, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}
