package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"
)
