package health

import (
	"encoding/json"
	"net/http"
)

// Handler answers {"status":"ok"} with 200, or {"status":"not ready"} with 503
// when ready is set and reports false.
func Handler(ready func() bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if ready != nil && !ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
