package routes

import (
	"Backend-AIInterviewer/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// requirementsRoutes covers the generate-and-approve flow.
func requirementsRoutes(router fiber.Router) {
	router.Post("/submit-requirements", controllers.SubmitRequirements)
	router.Post("/approve-requirements", controllers.ApproveRequirements)
}
