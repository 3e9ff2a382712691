package utils

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/ip812/helloadp/status"
	"github.com/ip812/helloadp/templates/components"
)

func Render(w http.ResponseWriter, r *http.Request, c templ.Component) error {
	return RenderStatus(w, r, http.StatusOK, c)
}

func RenderStatus(w http.ResponseWriter, r *http.Request, code int, c templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	return c.Render(r.Context(), w)
}

type TemplHandler func(w http.ResponseWriter, r *http.Request) error

// MakeTemplHandler renders a returned status.Toast with its status code.
// Any other error is reported as an internal server error toast.
func MakeTemplHandler(f TemplHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := f(w, r)
		if err == nil {
			return
		}

		var toast status.Toast
		if !errors.As(err, &toast) {
			toast = status.ErrorInternalServerError(status.ErrDB)
		}
		_ = RenderStatus(w, r, toast.StatusCode, components.Toast(toast))
	}
}
