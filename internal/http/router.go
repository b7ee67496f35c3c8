package router

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"example.com/authdemo/internal/core"
	"example.com/authdemo/internal/http/middleware"
	"example.com/authdemo/internal/platform/config"
	"example.com/authdemo/internal/platform/password"
	"example.com/authdemo/internal/repo"
)

const loginPage = "login.html"

// Build wires a fresh credential store into the HTTP routes.
func Build(cfg config.Config) (http.Handler, error) {
	scheme, err := password.Lookup(cfg.PasswordScheme, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	userRepo := repo.NewUserMem()
	svc := core.NewService(userRepo, scheme)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)
	r.Use(chimw.GetHead)

	r.Post("/api/signup", svc.SignupHandler)
	r.Post("/api/login", svc.LoginHandler)

	// Front-end
	r.Get("/", home(cfg.StaticDir))
	r.Get("/*", http.FileServer(http.Dir(cfg.StaticDir)).ServeHTTP)

	return r, nil
}

func home(dir string) http.HandlerFunc {
	page := filepath.Join(dir, loginPage)
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, page)
	}
}
