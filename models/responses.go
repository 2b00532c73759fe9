package models

// StatusResponse is the JSON envelope returned for every non-row-returning
// outcome (create/update/delete confirmations and all errors).
//
// Error is a pointer so that success responses serialise it as an explicit
// null rather than omitting the field; clients rely on the field always
// being present.
type StatusResponse struct {
	// StatusMsg is a short human-readable summary of the outcome,
	// e.g. "user created successfully" or "could not update user".
	StatusMsg string `json:"status_msg"`

	// Error carries an optional longer explanation and is nil on success.
	Error *string `json:"error"`
}
