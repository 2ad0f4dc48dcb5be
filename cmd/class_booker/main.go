package main

import (
	"log"

	"github.com/stpnv0/ClassBooker/internal/app"
	"github.com/stpnv0/ClassBooker/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("init class booker: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("run class booker: %v", err)
	}
}
