package cerror

import (
	"net/http"

	"go.uber.org/zap/zapcore"
)

var (
	ErrorBadRequest = &CustomError{
		HttpStatusCode: http.StatusBadRequest,
		LogMessage:     "malformed request body or query parameter",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorUserNotFound = &CustomError{
		HttpStatusCode: http.StatusNotFound,
		LogMessage:     "User not found",
		LogSeverity:    zapcore.WarnLevel,
	}
)
