package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	DB "Backend-AIInterviewer/src/database"
	"Backend-AIInterviewer/src/jobs"
	"Backend-AIInterviewer/src/services/applications"
	syncsvc "Backend-AIInterviewer/src/services/sync"
	"Backend-AIInterviewer/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SyncEngine is injected once from main for the on-demand sync fallback path.
var SyncEngine *syncsvc.Engine

// GetApplications lists every tracked application form.
func GetApplications(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	forms, err := applications.List(ctx)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to list applications")
	}
	return c.Status(http.StatusOK).JSON(forms)
}

// GetApplication returns one tracked form with all observed responses.
func GetApplication(c *fiber.Ctx) error {
	formID := c.Params("formId")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	form, err := applications.GetByFormID(ctx, formID)
	if err != nil {
		if errors.Is(err, applications.ErrFormUntracked) {
			return utils.HandleError(c, http.StatusNotFound, "Application not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to load application")
	}
	return c.Status(http.StatusOK).JSON(form)
}

// DeleteApplication untracks an application form.
func DeleteApplication(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := applications.Delete(ctx, id); err != nil {
		if errors.Is(err, applications.ErrFormUntracked) {
			return utils.HandleError(c, http.StatusNotFound, "Application not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to delete application")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Application deleted"})
}

// TriggerSync requests an immediate sync of one form. With Redis the work is
// queued; without it the sync runs inline before responding.
func TriggerSync(c *fiber.Ctx) error {
	formID := c.Params("formId")

	if DB.AsynqClient != nil {
		task, err := jobs.NewSyncFormTask(formID)
		if err != nil {
			return utils.HandleError(c, http.StatusInternalServerError, "Failed to create sync task")
		}
		taskID := "sync-form-" + formID + "-" + time.Now().Format("20060102150405")
		if _, err := DB.AsynqClient.Enqueue(task, asynq.TaskID(taskID), asynq.MaxRetry(3)); err != nil {
			log.Println("❌ enqueue sync task:", err)
			return utils.HandleError(c, http.StatusInternalServerError, "Failed to enqueue sync task")
		}
		log.Println("✅ Enqueued sync task:", taskID)
		return c.Status(http.StatusAccepted).JSON(fiber.Map{"message": "Sync queued", "taskId": taskID})
	}

	// no Redis → run inline
	log.Println("⚠️ Redis not available → running sync synchronously")
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := SyncEngine.SyncForm(ctx, formID); err != nil {
		if errors.Is(err, applications.ErrFormUntracked) {
			return utils.HandleError(c, http.StatusNotFound, "Application not found")
		}
		return utils.HandleError(c, http.StatusBadGateway, "Sync failed: "+err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Sync completed"})
}
