package errors

// Response messages for the four statuses the API emits. Clients display
// these verbatim, so they are part of the wire contract.
const (
	MsgBadRequest    = "Bad request sent"
	MsgNotFound      = "Data could not be found"
	MsgUnprocessable = "Could not be processed"
	MsgInternalError = "Internal server error"
)
