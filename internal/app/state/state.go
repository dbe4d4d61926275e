package state

import (
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AppState is the long-lived handle bundle shared by every request: a
// static health-check banner, a visit counter, and the pooled connection
// handle. The pool is safe for concurrent use on its own; the counter is
// the only field that needs the mutex.
type AppState struct {
	HealthCheckResponse string
	DB                  *pgxpool.Pool

	mu         sync.Mutex
	visitCount uint64
}

// New creates the shared application state.
func New(banner string, db *pgxpool.Pool) *AppState {
	return &AppState{
		HealthCheckResponse: banner,
		DB:                  db,
	}
}

// Visit increments the visit counter and returns the formatted health
// response. The lock covers only the read-increment-format sequence and
// is never held across a store call.
func (s *AppState) Visit() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visitCount++
	return fmt.Sprintf("%s %d times", s.HealthCheckResponse, s.visitCount)
}

// VisitCount returns the current counter value.
func (s *AppState) VisitCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visitCount
}
