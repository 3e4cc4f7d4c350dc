package main

import (
	"embed"
	"log"
	"os"

	"settlers/internal/config"
	"settlers/internal/server"
)

//go:embed web/static
var static embed.FS

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	srv := server.New(cfg, static)
	if err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
