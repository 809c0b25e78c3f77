package middleware

import (
	"io"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
)

// AccessLog registra cada requisição no formato combinado do Apache
func AccessLog(out io.Writer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return handlers.CombinedLoggingHandler(out, next)
	}
}

// Recovery transforma um panic num 500 e registra a pilha no log do processo
func Recovery(logger *log.Logger) func(http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{logger}),
		handlers.PrintRecoveryStack(true),
	)
}

type recoveryLogger struct {
	l *log.Logger
}

func (r recoveryLogger) Println(v ...interface{}) {
	r.l.Println(append([]interface{}{"🔥 panic recuperado:"}, v...)...)
}

// Chain aplica os middlewares na ordem em que foram passados (o primeiro é o mais externo)
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
