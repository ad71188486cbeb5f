package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"clientpulse-backend/config"
	"clientpulse-backend/routes"
	"clientpulse-backend/services"
	"clientpulse-backend/store"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	cfg := config.Load()
	logger := config.NewLogger()

	st := store.NewMemoryStore()

	reminders := services.NewReminderService(st, cfg, logger)
	if err := reminders.StartScheduler(); err != nil {
		logger.Fatal(err)
	}
	defer reminders.Stop()

	r := routes.SetupRouter(cfg, st, logger)
	printRoutes(r)

	logger.Infof("serving on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal(err)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
