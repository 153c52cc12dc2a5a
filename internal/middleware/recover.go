package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/nitgconnect/backend/internal/models"
)

// Recoverer turns a panic into a 500 JSON body. The stack is only included when
// exposeStack is set, which the server does outside production.
func Recoverer(exposeStack bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := debug.Stack()
				log.Printf("[Recoverer] panic: %v\n%s", rec, stack)

				resp := models.NewErrorResponse(fmt.Sprint(rec))
				if err, ok := rec.(error); ok {
					resp.Error = err.Error()
				}
				if exposeStack {
					resp.Stack = string(stack)
				}
				writeJSON(w, http.StatusInternalServerError, resp)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
