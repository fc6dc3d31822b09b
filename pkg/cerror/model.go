package cerror

import (
	"errors"

	"github.com/goccy/go-json"
	"go.uber.org/zap/zapcore"
)

type CustomError struct {
	HttpStatusCode int             `json:"httpStatus"`
	LogMessage     string          `json:"-"`
	LogSeverity    zapcore.Level   `json:"-"`
	LogFields      []zapcore.Field `json:"-"`
}

func (cerr *CustomError) Error() string {
	return cerr.LogMessage
}

func (cerr *CustomError) SetSeverity(severity zapcore.Level) *CustomError {
	cerr.LogSeverity = severity
	return cerr
}

func (cerr *CustomError) SerializeCerror() error {
	var marshalledToByte []byte
	marshalledToByte, _ = json.Marshal(&cerr)

	return errors.New(string(marshalledToByte))
}

func NewError(httpStatusCode int, logMessage string, logFields ...zapcore.Field) *CustomError {
	return &CustomError{
		HttpStatusCode: httpStatusCode,
		LogMessage:     logMessage,
		LogSeverity:    zapcore.ErrorLevel,
		LogFields:      logFields,
	}
}
