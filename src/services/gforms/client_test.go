package gforms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/option"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := forms.NewService(context.Background(),
		option.WithEndpoint(srv.URL),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return New(svc)
}

func TestFetchResponses(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/forms/F1/responses"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"responses": [
				{
					"responseId": "R1",
					"createTime": "2024-05-01T10:00:00.000Z",
					"answers": {
						"q-email": {"questionId": "q-email", "textAnswers": {"answers": [{"value": "a@x.com"}]}},
						"q-langs": {"questionId": "q-langs", "textAnswers": {"answers": [{"value": "Go"}, {"value": "Python"}]}}
					}
				},
				{
					"responseId": "R2",
					"createTime": "not-a-timestamp",
					"answers": {}
				}
			]
		}`))
	})

	out, err := client.FetchResponses(context.Background(), "F1")
	require.NoError(t, err)
	require.Len(t, out, 2)

	t.Run("AnswerValuesCollectedPerQuestion", func(t *testing.T) {
		first := out[0]
		assert.Equal(t, "R1", first.ResponseID)
		assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), first.SubmittedTime)
		assert.Equal(t, []string{"a@x.com"}, first.Answers["q-email"])
		assert.Equal(t, []string{"Go", "Python"}, first.Answers["q-langs"])
	})

	t.Run("MalformedCreateTimeKeepsZeroTime", func(t *testing.T) {
		second := out[1]
		assert.Equal(t, "R2", second.ResponseID)
		assert.True(t, second.SubmittedTime.IsZero())
	})
}

func TestFetchResponsesUpstreamFailure(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error": {"code": 503, "message": "backend unavailable"}}`))
	})

	_, err := client.FetchResponses(context.Background(), "F1")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestFetchQuestionTitlesNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"code": 404, "message": "Requested entity was not found."}}`))
	})

	_, err := client.FetchQuestionTitles(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrFormNotFound)
}
