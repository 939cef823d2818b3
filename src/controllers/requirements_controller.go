package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"Backend-AIInterviewer/src/models"
	"Backend-AIInterviewer/src/services/applications"
	"Backend-AIInterviewer/src/services/generation"
	"Backend-AIInterviewer/src/services/gforms"
	"Backend-AIInterviewer/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Injected once from main. The generation service and forms client are
// process-scoped: created at startup, reused for every request.
var (
	GenerationService *generation.Service
	FormsClient       *gforms.Client
)

type requirementsIn struct {
	ApplicationFormReqs   string `json:"applicationFormReqs"`
	InterviewQuestionReqs string `json:"interviewQuestionReqs"`
	ReportReqs            string `json:"reportReqs"`
}

type approveIn struct {
	ApplicationName       string                     `json:"applicationName"`
	FormURL               string                     `json:"formUrl"`
	ReportTemplate        *models.ReportTemplate     `json:"reportTemplate"`
	InterviewQuestions    []models.InterviewQuestion `json:"interviewQuestions"`
	ApplicationFormReqs   string                     `json:"applicationFormReqs"`
	InterviewQuestionReqs string                     `json:"interviewQuestionReqs"`
	ReportReqs            string                     `json:"reportReqs"`
}

// SubmitRequirements generates the three artifacts and creates the external
// form, all in parallel, then pushes the generated questions onto the form.
func SubmitRequirements(c *fiber.Ctx) error {
	start := time.Now()

	var in requirementsIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	var (
		wg        sync.WaitGroup
		schema    *models.FormSchema
		questions []models.InterviewQuestion
		report    *models.ReportTemplate
		formID    string
		formURL   string

		schemaErr, questionsErr, reportErr, formErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		schema, schemaErr = GenerationService.GenerateFormSchema(ctx, in.ApplicationFormReqs)
	}()
	go func() {
		defer wg.Done()
		questions, questionsErr = GenerationService.GenerateInterviewQuestions(ctx, in.InterviewQuestionReqs)
	}()
	go func() {
		defer wg.Done()
		report, reportErr = GenerationService.GenerateReportTemplate(ctx, in.ReportReqs)
	}()
	go func() {
		defer wg.Done()
		formID, formURL, formErr = FormsClient.CreateForm(ctx, "Application Form Requirements")
	}()
	wg.Wait()

	for _, err := range []error{schemaErr, questionsErr, reportErr, formErr} {
		if err != nil {
			log.Println("❌ Error processing requirements:", err)
			return utils.HandleError(c, http.StatusInternalServerError, "Failed to process requirements")
		}
	}

	if err := FormsClient.ApplyRequests(ctx, formID, generation.BuildFormRequests(schema)); err != nil {
		log.Println("❌ Error updating form:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to process requirements")
	}

	duration := time.Since(start)
	log.Printf("✅ Requirements processed successfully in %v", duration)

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message":            "Requirements processed successfully",
		"formUrl":            formURL,
		"formId":             formID,
		"interviewQuestions": questions,
		"reportTemplate":     report,
		"duration":           fmt.Sprintf("%d ms", duration.Milliseconds()),
	})
}

// ApproveRequirements stores the reviewed application so the sync pipeline
// starts polling its form for responses.
func ApproveRequirements(c *fiber.Ctx) error {
	var in approveIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	form := &models.ApplicationForm{
		ApplicationName:       in.ApplicationName,
		FormURL:               in.FormURL,
		ApplicationFormReqs:   in.ApplicationFormReqs,
		InterviewQuestionReqs: in.InterviewQuestionReqs,
		ReportReqs:            in.ReportReqs,
		ReportTemplate:        in.ReportTemplate,
		InterviewQuestions:    in.InterviewQuestions,
	}

	stored, err := applications.Approve(ctx, form)
	if err != nil {
		log.Println("❌ Error processing approval:", err)
		return utils.HandleError(c, http.StatusBadRequest, "Failed to approve and store data: "+err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Data approved and stored successfully!",
		"id":      stored.ID.Hex(),
		"formId":  stored.FormID,
	})
}
