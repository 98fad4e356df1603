package router

import (
	"encoding/json"
	"net/http"

	"licitemos/internal/controller"
	"licitemos/internal/models"
)

func NewRouter(c *controller.Controller, authToken string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", c.Health)
	mux.HandleFunc("POST /kv/get", withAuth(authToken, c.Get))
	mux.HandleFunc("POST /kv/set", withAuth(authToken, c.Set))
	mux.HandleFunc("POST /kv/del", withAuth(authToken, c.Delete))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("page not found"))
	})

	cors := http.NewServeMux()
	cors.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
		} else {
			mux.ServeHTTP(w, r)
		}
	})

	return cors
}

// withAuth enforces the shared static bearer credential. An empty
// configured token leaves the endpoint open, which is only intended for
// local development.
func withAuth(token string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			data, _ := json.Marshal(controller.ErrorResponse{Error: models.ErrUnauthorized.Error()})
			w.Write(data)
			return
		}
		next(w, r)
	}
}
