package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
)

// DecodeJSON decodes the request body into v. On failure it writes the error
// response and returns false: 413 when the body exceeded the size limit,
// 400 otherwise.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
		return false
	}
	JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
	return false
}
