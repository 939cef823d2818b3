package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"Backend-AIInterviewer/src/services/applications"
	syncsvc "Backend-AIInterviewer/src/services/sync"

	"github.com/hibiken/asynq"
)

const TypeSyncForm = "sync:form"

type SyncFormPayload struct {
	FormID string `json:"form_id"`
}

func NewSyncFormTask(formID string) (*asynq.Task, error) {
	payload, err := json.Marshal(SyncFormPayload{FormID: formID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSyncForm, payload), nil
}

// HandleSyncFormTask runs one sync step for a single form outside the regular
// cadence (operator-triggered). The engine serializes per-form work, so this
// cannot race a scheduled cycle on the same form.
func HandleSyncFormTask(engine *syncsvc.Engine) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload SyncFormPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return err
		}

		err := engine.SyncForm(ctx, payload.FormID)
		if errors.Is(err, applications.ErrFormUntracked) {
			log.Println("⚠️ Form no longer tracked. Skipping task:", payload.FormID)
			return nil
		}
		if err != nil {
			log.Printf("❌ On-demand sync failed for form %s: %v", payload.FormID, err)
			return err
		}

		log.Println("✅ On-demand sync completed:", payload.FormID)
		return nil
	}
}
