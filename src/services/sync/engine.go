package sync

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"Backend-AIInterviewer/src/models"
)

// emailQuestionTitle is the form question whose answer is the notification
// recipient. The generated forms always carry it at index 0.
const emailQuestionTitle = "Email"

// FormFetcher is the form-service boundary the engine polls.
type FormFetcher interface {
	FetchQuestionTitles(ctx context.Context, formID string) (map[string]string, error)
	FetchResponses(ctx context.Context, formID string) ([]models.RawResponse, error)
}

// ResponseStore is the persisted source of truth for dedup decisions.
type ResponseStore interface {
	GetByFormID(ctx context.Context, formID string) (*models.ApplicationForm, error)
	List(ctx context.Context) ([]models.ApplicationForm, error)
	MergeResponses(ctx context.Context, formID string, responses map[string]models.ResponseRecord) error
}

// Notifier delivers the one-time access code to a respondent.
type Notifier interface {
	NotifyRespondent(ctx context.Context, to, responseID string) error
}

// Engine merges newly submitted responses into each tracked form's stored
// record and notifies each new respondent exactly once.
type Engine struct {
	forms       FormFetcher
	store       ResponseStore
	notifier    Notifier
	callTimeout time.Duration

	// formLocks serializes SyncForm per formId: a scheduled cycle and an
	// on-demand sync for the same form must never race on the merge.
	formLocks sync.Map // formID → *sync.Mutex
}

func NewEngine(forms FormFetcher, store ResponseStore, notifier Notifier, callTimeout time.Duration) *Engine {
	if callTimeout <= 0 {
		callTimeout = 20 * time.Second
	}
	return &Engine{
		forms:       forms,
		store:       store,
		notifier:    notifier,
		callTimeout: callTimeout,
	}
}

// SyncAll runs one cycle over every tracked form. Forms are synced
// concurrently and independently: one form's failure never aborts another's,
// and no error escapes to the scheduler.
func (e *Engine) SyncAll(ctx context.Context) {
	forms, err := e.store.List(ctx)
	if err != nil {
		log.Println("❌ [sync] listing tracked forms failed:", err)
		return
	}

	var wg sync.WaitGroup
	for _, form := range forms {
		wg.Add(1)
		go func(formID string) {
			defer wg.Done()
			if err := e.SyncForm(ctx, formID); err != nil {
				log.Printf("⚠️ [sync] form %s skipped this cycle: %v", formID, err)
			}
		}(form.FormID)
	}
	wg.Wait()
}

// SyncForm performs one sync step for a single form:
// fetch → normalize → diff → notify new respondents → one atomic merge.
// Any error before the merge leaves the stored record untouched.
func (e *Engine) SyncForm(ctx context.Context, formID string) error {
	lock, _ := e.formLocks.LoadOrStore(formID, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	stored, err := e.store.GetByFormID(ctx, formID)
	if err != nil {
		return err
	}

	titles, err := e.fetchTitles(ctx, formID)
	if err != nil {
		return err
	}

	raw, err := e.fetchResponses(ctx, formID)
	if err != nil {
		return err
	}

	// Working copy: stored records are authoritative and never overwritten,
	// even if the upstream payload for a known responseId were to differ.
	working := make(map[string]models.ResponseRecord, len(stored.Responses)+len(raw))
	for id, rec := range stored.Responses {
		working[id] = rec
	}

	var fresh []models.RawResponse
	for _, r := range raw {
		if _, known := working[r.ResponseID]; known {
			continue
		}
		fresh = append(fresh, r)
		working[r.ResponseID] = models.ResponseRecord{
			SubmittedTime: r.SubmittedTime,
			Answers:       normalizeAnswers(r.Answers, titles),
			Notified:      models.NotifyPending,
		}
	}

	if len(fresh) == 0 {
		return nil
	}

	// Fan out notifications and join before the single persist, so every new
	// record lands together with its attempted outcome.
	outcomes := e.notifyAll(ctx, working, fresh)
	for responseID, notified := range outcomes {
		rec := working[responseID]
		rec.Notified = notified
		working[responseID] = rec
	}

	if err := e.store.MergeResponses(ctx, formID, working); err != nil {
		return err
	}

	log.Printf("✅ [sync] form %s: %d new response(s) merged", formID, len(fresh))
	return nil
}

// notifyAll dispatches one send per new response concurrently and waits for
// every outcome. A response without an Email answer fails immediately without
// touching the notifier. Send errors are captured, never propagated.
func (e *Engine) notifyAll(ctx context.Context, working map[string]models.ResponseRecord, fresh []models.RawResponse) map[string]string {
	outcomes := make(map[string]string, len(fresh))

	// Resolve recipients first: no-recipient outcomes are recorded before any
	// send goroutine exists, so the map is only ever written under mu once
	// dispatch starts.
	type dispatch struct {
		responseID string
		to         string
	}
	var dispatches []dispatch
	for _, r := range fresh {
		recipient, ok := working[r.ResponseID].Answers[emailQuestionTitle]
		if !ok || recipient == "" {
			log.Printf("⚠️ [sync] no email answer for responseId=%s, marking failed", r.ResponseID)
			outcomes[r.ResponseID] = models.NotifyFailed
			continue
		}
		dispatches = append(dispatches, dispatch{responseID: r.ResponseID, to: recipient})
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, d := range dispatches {
		wg.Add(1)
		go func(responseID, to string) {
			defer wg.Done()

			sendCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
			defer cancel()

			notified := models.NotifySent
			if err := e.notifier.NotifyRespondent(sendCtx, to, responseID); err != nil {
				notified = models.NotifyFailed
			}

			mu.Lock()
			outcomes[responseID] = notified
			mu.Unlock()
		}(d.responseID, d.to)
	}
	wg.Wait()

	return outcomes
}

func (e *Engine) fetchTitles(ctx context.Context, formID string) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()
	return e.forms.FetchQuestionTitles(ctx, formID)
}

func (e *Engine) fetchResponses(ctx context.Context, formID string) ([]models.RawResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()
	return e.forms.FetchResponses(ctx, formID)
}

// normalizeAnswers resolves question ids to titles (falling back to the raw
// id) and joins multiple values for one question into a single string.
func normalizeAnswers(raw map[string][]string, titles map[string]string) map[string]string {
	answers := make(map[string]string, len(raw))
	for questionID, values := range raw {
		title, ok := titles[questionID]
		if !ok {
			title = questionID
		}
		answers[title] = strings.Join(values, ", ")
	}
	return answers
}
