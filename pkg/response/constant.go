package response

const (
	MessageSuccess       = "Success"
	MessageUnauthorized  = "Unauthorized"
	MessageForbidden     = "Forbidden"
	MessageInternalError = "Something went wrong"
	MessageBadRequest    = "Bad request"
)
