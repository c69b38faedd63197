package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/daily-lab/todolite/pkg/usecase"
	"github.com/daily-lab/todolite/pkg/utils/logging"
)

type Server struct {
	handler http.Handler
	uc      *usecase.UseCases
}

// New builds the HTTP handler: chi router, access logging, permissive CORS
// and the todo/insight routes.
func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		uc: uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	// Health endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK")) //nolint:errcheck
	})

	r.Route("/todos", func(r chi.Router) {
		r.Post("/", s.createTodo)
		r.Get("/", s.listTodos)
		r.Post("/insights", s.generateInsights)
		// "/all" must not be captured by the "{id}" route
		r.Delete("/all", s.deleteAllTodos)
		r.Put("/{id}", s.updateTodo)
		r.Delete("/{id}", s.deleteTodo)
	})

	// All origins, methods and headers are permitted
	s.handler = cors.AllowAll().Handler(r)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
