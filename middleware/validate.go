package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/utils"
)

// DecodeJSON decodes a JSON payload into dst, rejecting non-JSON content types
// and unknown fields. It writes the 4xx response itself; callers only need to
// stop on a non-nil return. Field-level validation stays in the handlers so
// each rule can produce its own descriptive message.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		utils.WriteJSON(w, http.StatusUnsupportedMediaType, utils.APIResponse{Success: false, Message: "Content-Type must be application/json"})
		return http.ErrNotSupported
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return err
	}
	return nil
}
