package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/ip812/helloadp/status"
)

func TestRender(t *testing.T) {
	rec := httptest.NewRecorder()
	err := Render(rec, httptest.NewRequest(http.MethodGet, "/", nil), templ.Raw("<p>hi</p>"))

	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, "<p>hi</p>", rec.Body.String())
}

func TestMakeTemplHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "no error",
			wantCode: http.StatusOK,
		},
		{
			name:     "toast",
			err:      status.WarningStatusBadRequest(status.WarnInvalidComment),
			wantCode: http.StatusBadRequest,
			wantBody: status.WarnInvalidComment.Error(),
		},
		{
			name:     "wrapped toast",
			err:      fmt.Errorf("create comment: %w", status.ErrorServiceUnavailable(status.ErrDatabaseNotReady)),
			wantCode: http.StatusServiceUnavailable,
			wantBody: status.ErrDatabaseNotReady.Error(),
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: status.ErrDB.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := MakeTemplHandler(func(w http.ResponseWriter, r *http.Request) error {
				return tt.err
			})

			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodPost, "/", nil))

			require.Equal(t, tt.wantCode, rec.Code)
			require.Contains(t, rec.Body.String(), tt.wantBody)
			if tt.err != nil {
				require.Contains(t, rec.Body.String(), `role="alert"`)
			}
		})
	}
}
