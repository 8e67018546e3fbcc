package http

import "net/http"

// index is a liveness route for humans and load balancers.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("go-purchase-graph is up"))
}
