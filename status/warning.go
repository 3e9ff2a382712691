package status

import (
	"fmt"
	"net/http"
)

var (
	WarnUnknownPage    = fmt.Errorf("no documentation page at this address")
	WarnInvalidComment = fmt.Errorf("a comment needs between 1 and 2000 characters")
)

func WarningStatusBadRequest(err error) Toast {
	return Toast{
		Message:    err.Error(),
		StatusCode: http.StatusBadRequest,
	}
}

func WarningStatusNotFound(err error) Toast {
	return Toast{
		Message:    err.Error(),
		StatusCode: http.StatusNotFound,
	}
}
