// Package respond defines the generic response envelope returned by every
// service operation.
package respond

import "encoding/json"

const (
	SuccessTrue  = "true"
	SuccessFalse = "false"
)

// Envelope is the uniform wrapper around every service result. Data holds
// each record JSON-encoded into its own string; existing clients of the API
// decode the elements individually, so the shape is kept as-is.
type Envelope struct {
	Success    string   `json:"success"`
	Message    string   `json:"message"`
	Data       []string `json:"data"`
	StatusCode int      `json:"status_code"`
}

// EncodeRecords marshals each record into its own JSON string for the
// envelope's data list. The returned slice is never nil.
func EncodeRecords[T any](records []T) ([]string, error) {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, string(b))
	}
	return out, nil
}
