package main

import (
	"log"

	"github.com/mentora-labs/campus-map/pkg/di"

	_ "github.com/mentora-labs/campus-map/docs"

	"github.com/joho/godotenv"
)

// @title			Campus Map API
// @version		1.0
// @description	Server-driven campus map for in-person help requests: boundary checks, meeting-point picking, and map browsing sessions.
// @BasePath		/
func main() {
	_ = godotenv.Load()

	server, cleanup, err := di.InitializeMapServer()
	if err != nil {
		log.Fatal(err)
	}

	err = server.Wait()
	cleanup()
	if err != nil {
		log.Fatal(err)
	}
}
