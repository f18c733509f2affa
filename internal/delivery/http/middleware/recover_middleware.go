package middleware

import (
	"net/http"
	"runtime/debug"

	"go-prescription-portal/pkg/response"

	"github.com/sirupsen/logrus"
)

type RecoverMiddleware struct {
	log *logrus.Logger
}

func NewRecoverMiddleware(log *logrus.Logger) *RecoverMiddleware {
	return &RecoverMiddleware{log: log}
}

// Handle turns a panic in a handler into a 500 and logs it with the stack
func (m *RecoverMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.log.WithFields(logrus.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"panic":  rec,
				}).Errorf("Recovered from panic: %s", debug.Stack())
				response.InternalServerError(w, "")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
