package http

import "net/http"

// HandleHealth reports process liveness. It does not touch the database
// or upstream providers.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
