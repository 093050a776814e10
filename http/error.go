package http

import (
	"log/slog"
	"net/http"

	"github.com/fwojciec/teologia"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	teologia.ECONFLICT: http.StatusConflict,
	teologia.EINVALID:  http.StatusBadRequest,
	teologia.ENOTFOUND: http.StatusNotFound,
	teologia.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// writeError writes the error message with the matching status code.
// Internal errors are logged and hidden from the user.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code, message := teologia.ErrorCode(err), teologia.ErrorMessage(err)

	if code == teologia.EINTERNAL {
		logger.Error("http error",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}

	http.Error(w, message, ErrorStatusCode(code))
}
