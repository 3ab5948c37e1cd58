package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"BreakoutSentinel/internal/ledger"
	"BreakoutSentinel/internal/scheduler"
)

// Server serves the screener dashboard and its API.
type Server struct {
	sched          *scheduler.Scheduler
	ledger         *ledger.Ledger
	refreshSeconds int
}

// NewServer creates a new dashboard server.
func NewServer(sched *scheduler.Scheduler, l *ledger.Ledger, refreshSeconds int) *Server {
	return &Server{sched: sched, ledger: l, refreshSeconds: refreshSeconds}
}

// Start starts the HTTP server on the given address. Blocks.
func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("GET /api/results", s.handleResults)
	mux.HandleFunc("GET /export.csv", s.handleExportCSV)
	mux.HandleFunc("POST /api/refresh", s.handleRefresh)
	mux.HandleFunc("POST /api/ledger/reset", s.handleLedgerReset)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("[INFO] dashboard listening on %s", addr)
	return srv.ListenAndServe()
}

// handleResults returns the latest snapshot as JSON.
func (s *Server) handleResults(w http.ResponseWriter, _ *http.Request) {
	snap := s.sched.Latest()
	if snap == nil {
		http.Error(w, "no pass completed yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		log.Printf("[ERROR] encode results: %v", err)
	}
}

// handleRefresh runs a screening pass immediately, then returns to the dashboard.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.sched.RunNow()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLedgerReset clears all recorded email notifications.
func (s *Server) handleLedgerReset(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.Reset(); err != nil {
		log.Printf("[ERROR] reset ledger: %v", err)
		http.Error(w, fmt.Sprintf("reset ledger: %v", err), http.StatusInternalServerError)
		return
	}
	log.Println("[INFO] notification ledger cleared")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
