package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/api"
	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/config"
	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/db"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	baseURL := flag.String("base-url", "http://localhost:8000", "public base URL")
	dataDir := flag.String("data-dir", "data", "directory for the sqlite database")
	flag.Parse()

	cfg := config.Load(*addr, *baseURL, *dataDir)

	if err := db.Init(cfg.DataDir); err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer db.Close()

	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	// Everything outside /api is the WASM client.
	mux.Handle("/", &app.Handler{
		Name:        "KalaSetu",
		ShortName:   "KalaSetu",
		Description: "Connecting artisans, mentors and investors.",
		Styles:      []string{"/web/app.css"},
	})

	log.Printf("KalaSetu listening on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, mux))
}
