package handler

import (
	"encoding/json"
	"net/http"

	"github.com/localprint/api/internal/model"
)

// DataResponse wraps a successful single-resource response
type DataResponse struct {
	Data interface{} `json:"data"`
}

// CollectionResponse wraps a collection response
type CollectionResponse struct {
	Data  interface{} `json:"data"`
	Count int         `json:"count"`
}

// CreatedResponse carries the identifier of a newly created record
type CreatedResponse struct {
	ID string `json:"id"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a successful data response
func WriteData(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, DataResponse{Data: data})
}

// WriteCollection writes a collection response. count is the number of items
// returned, not the total in the store.
func WriteCollection(w http.ResponseWriter, status int, data interface{}, count int) {
	WriteJSON(w, status, CollectionResponse{Data: data, Count: count})
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	WriteJSON(w, err.Status, err)
}

// DecodeJSON decodes a JSON request body into the given struct. Request
// structs carry explicit fields for the derived attributes clients tend to
// echo back, so those are absorbed rather than rejected.
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
