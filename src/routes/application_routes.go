package routes

import (
	"Backend-AIInterviewer/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// applicationRoutes covers tracked forms and their collected responses.
func applicationRoutes(router fiber.Router) {
	apps := router.Group("/applications")

	apps.Get("/", controllers.GetApplications)
	apps.Get("/:formId", controllers.GetApplication)
	apps.Delete("/:id", controllers.DeleteApplication)
	apps.Post("/:formId/sync", controllers.TriggerSync)
}
