package resp

const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeInternalError = "INTERNAL_ERROR"
	CodeUnsupported   = "UNSUPPORTED"
	CodeUnavailable   = "UNAVAILABLE"
)
