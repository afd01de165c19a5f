package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/cache"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/config"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

// Operational sidecar: health probe plus cache administration, kept off the
// public API port.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	statsCache, err := cache.NewDashboardStatsCache(cfg.Cache)
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}

	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	r.HandleFunc("/cache/invalidate", func(w http.ResponseWriter, r *http.Request) {
		if err := statsCache.InvalidateAll(r.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("POST")

	addr := fmt.Sprintf(":%s", cfg.Server.AdminPort)
	log.Printf("Admin server starting on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
