package status

import "net/http"

type Level string

const (
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Toast is an error carrying the message and status code shown to the reader.
type Toast struct {
	Message    string
	StatusCode int
}

func (t Toast) Error() string {
	return t.Message
}

func (t Toast) Level() Level {
	if t.StatusCode >= http.StatusInternalServerError {
		return LevelError
	}
	return LevelWarning
}
