package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.SetPrefix("lg/activity-log-go-api: ")
	log.SetFlags(0)

	// .env is optional here — deployed environments inject real env vars.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env loaded: %v", err)
	}

	h := &Handler{db: getDBPool()}

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
