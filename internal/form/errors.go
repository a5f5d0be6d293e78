package form

import (
	"errors"

	"pg360/internal/api"
)

// User-facing failure texts.
const (
	MsgInternalServer = "Erro interno no servidor."
	MsgNoConnection   = "Sem conexão com o servidor."
	MsgUnknown        = "Erro desconhecido."
)

// ValidationError is a local rule violation. It blocks submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Describe turns a submission failure into the text shown to the user.
func Describe(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	var serverErr *api.ServerError
	if errors.As(err, &serverErr) {
		if msg := serverErr.Message(); msg != "" {
			return msg
		}
		return MsgInternalServer
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return MsgNoConnection
	}

	return MsgUnknown
}
