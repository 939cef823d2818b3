package jobs

import (
	"log"

	DB "Backend-AIInterviewer/src/database"
	syncsvc "Backend-AIInterviewer/src/services/sync"

	"github.com/hibiken/asynq"
)

// RegisterHandlers binds every task type to its handler.
func RegisterHandlers(mux *asynq.ServeMux, engine *syncsvc.Engine) {
	mux.HandleFunc(TypeSyncForm, HandleSyncFormTask(engine))
}

// StartWorker runs the asynq server in the background. Without Redis the
// worker is skipped; on-demand syncs then run synchronously in the handler.
func StartWorker(engine *syncsvc.Engine) {
	if DB.RedisURI == "" || DB.RedisClient == nil {
		log.Println("⚠️ Redis not available → asynq worker not started")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	RegisterHandlers(mux, engine)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ asynq worker stopped:", err)
		}
	}()
	log.Println("✅ asynq worker started")
}
