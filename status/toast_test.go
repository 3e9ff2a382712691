package status

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToast_Levels(t *testing.T) {
	require.Equal(t, LevelWarning, WarningStatusBadRequest(WarnInvalidComment).Level())
	require.Equal(t, LevelWarning, WarningStatusNotFound(WarnUnknownPage).Level())
	require.Equal(t, LevelError, ErrorInternalServerError(ErrDB).Level())
	require.Equal(t, LevelError, ErrorServiceUnavailable(ErrDatabaseNotReady).Level())
}

func TestToast_IsAnError(t *testing.T) {
	var err error = fmt.Errorf("create comment: %w", ErrorServiceUnavailable(ErrDatabaseNotReady))

	var toast Toast
	require.True(t, errors.As(err, &toast))
	require.Equal(t, http.StatusServiceUnavailable, toast.StatusCode)
	require.Equal(t, ErrDatabaseNotReady.Error(), toast.Error())
}
