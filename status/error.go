package status

import (
	"fmt"
	"net/http"
)

var (
	ErrDatabaseNotReady        = fmt.Errorf("comments are unavailable right now")
	ErrDB                      = fmt.Errorf("unexpected database error")
	ErrParsingForm             = fmt.Errorf("failed to parse a form")
	ErrDecodingForm            = fmt.Errorf("failed to decode a form")
	ErrFailedToValidateRequest = fmt.Errorf("failed to validate a request")

	ErrCreateComment  = fmt.Errorf("failed to create a comment")
	ErrGetAllComments = fmt.Errorf("failed to get the page's comments")
)

func ErrorNotFound(err error) Toast {
	return Toast{
		Message:    err.Error(),
		StatusCode: http.StatusNotFound,
	}
}

func ErrorInternalServerError(err error) Toast {
	return Toast{
		Message:    err.Error(),
		StatusCode: http.StatusInternalServerError,
	}
}

func ErrorServiceUnavailable(err error) Toast {
	return Toast{
		Message:    err.Error(),
		StatusCode: http.StatusServiceUnavailable,
	}
}
