package workspace

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddlewareResuelveWorkspace(t *testing.T) {
	var visto string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visto = Desde(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/cuentas", nil)
	req.Header.Set(Header, MKN)
	Middleware(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, MKN, visto)

	// sin header cae al default
	req = httptest.NewRequest(http.MethodGet, "/cuentas", nil)
	Middleware(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, MyWorkIn, visto)
}

func TestMiddlewareRechazaWorkspaceDesconocido(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no debería llegar al handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/cuentas", nil)
	req.Header.Set(Header, "otro")
	rec := httptest.NewRecorder()
	Middleware(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
