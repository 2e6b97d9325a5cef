package httpapi

import (
	"log"
	"net/http"

	"menuboard/internal/identity"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, verifier identity.Verifier) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	var wrapped http.Handler = r
	if verifier != nil {
		wrapped = identity.Middleware(verifier)(wrapped)
	}
	return cors.Default().Handler(wrapped)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Menuboard service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
