package main

import (
	"fmt"
	"log"

	"github.com/manoranjan-programmer/fiesta-ignitron/internal/config"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/database"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// HTTP server
	r := router.Setup(cfg, db)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
