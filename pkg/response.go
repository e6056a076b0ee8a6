package pkg

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as a JSON response body with the given status.
//
// The value is encoded directly, without a success/data envelope: the
// events API promises the raw events array, nothing more.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
