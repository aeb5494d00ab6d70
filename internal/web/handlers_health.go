package web

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
	Pool   any    `json:"pool,omitempty"`
}

// handleHealthz is a liveness probe. It does not touch the database; the pool
// snapshot only reports what the pool already knows.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	if s.health != nil {
		resp.Pool = s.health()
	}
	writeJSON(w, r, http.StatusOK, resp)
}
