package main

import (
	"flag"
	"log"
	"os"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port)

	log.Printf("Sphere Raytracer Preview Server")
	log.Printf("Fetch http://localhost:%d/api/frame for the current frame or /api/animate for a stream", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
