package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"Backend-AIInterviewer/src/controllers"
	"Backend-AIInterviewer/src/database"
	"Backend-AIInterviewer/src/jobs"
	"Backend-AIInterviewer/src/routes"
	"Backend-AIInterviewer/src/services/applications"
	"Backend-AIInterviewer/src/services/applications/email"
	"Backend-AIInterviewer/src/services/generation"
	"Backend-AIInterviewer/src/services/gforms"
	syncsvc "Backend-AIInterviewer/src/services/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis + Asynq are optional; without them on-demand syncs run inline
	database.InitRedis()
	database.InitAsynq()

	// process-scoped external clients, created once and injected
	formsService, err := gforms.NewService(context.Background())
	if err != nil {
		log.Fatalf("Error initializing forms service: %v", err)
	}
	formsClient := gforms.New(formsService)

	generationService, err := generation.NewFromEnv()
	if err != nil {
		log.Fatalf("Error initializing generation service: %v", err)
	}

	sender, err := email.NewSMTPSenderFromEnv()
	if err != nil {
		log.Fatalf("Error initializing mail sender: %v", err)
	}
	notifier := email.NewRespondentNotifier(sender)

	engine := syncsvc.NewEngine(formsClient, applications.Store{}, notifier, envSeconds("SYNC_CALL_TIMEOUT_SECONDS", 20))

	controllers.GenerationService = generationService
	controllers.FormsClient = formsClient
	controllers.SyncEngine = engine

	jobs.StartWorker(engine)

	// background response polling
	scheduler := syncsvc.NewScheduler(envSeconds("SYNC_INTERVAL_SECONDS", 30), engine.SyncAll)
	go scheduler.Start(context.Background())

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // must stay false with "*"
	}))

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "3001"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}

func envSeconds(key string, def int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
		log.Printf("⚠️ invalid %s=%q, using default %ds", key, os.Getenv(key), def)
	}
	return time.Duration(def) * time.Second
}
