package workspace

import (
	"context"
	"net/http"
)

type ctxKey string

const CtxWorkspace ctxKey = "workspace"

// Header enviado por el front con el tenant activo.
const Header = "X-Workspace"

// Middleware resuelve el workspace del request y lo deja en el contexto.
// Sin header se asume MyWorkIn (compatibilidad con el front viejo).
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = MyWorkIn
		}
		if !EsValido(id) {
			http.Error(w, "Workspace desconocido", http.StatusBadRequest)
			return
		}
		ctx := context.WithValue(r.Context(), CtxWorkspace, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Desde devuelve el workspace resuelto para el request.
func Desde(ctx context.Context) string {
	if id, ok := ctx.Value(CtxWorkspace).(string); ok && id != "" {
		return id
	}
	return MyWorkIn
}
