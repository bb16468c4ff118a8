package main

import (
	"log"

	"github.com/Franklin-Osede/bookly/internal/app"
	"github.com/Franklin-Osede/bookly/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
