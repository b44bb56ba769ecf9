package web

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "workout/internal/adapters/http/docs"
	"workout/internal/adapters/http/middleware"
)

//go:generate swag init --generalInfo routes.go --output docs --parseDependency --parseInternal

// registerRoutes attaches every page and action to mux.
//
//	@title			Personalized Workout Plan API
//	@version		1.0
//	@description	JSON endpoints of the workout plan app. Browser pages share the same routes.
//	@BasePath		/
func registerRoutes(mux *http.ServeMux) {
	// Public
	mux.HandleFunc("/{$}", handleIndex)
	mux.HandleFunc("/register", handleRegister)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)

	// Demographics and the personal plan
	mux.HandleFunc("/button", handleButton)
	mux.HandleFunc("GET /show_button/{gender}/{age}", handleShowButton)
	mux.HandleFunc("/personal", handlePersonal)
	mux.HandleFunc("/challenge", handleChallenge)

	// Notes
	mux.HandleFunc("/note", handleNotes)
	mux.HandleFunc("POST /delete_note/{id}", handleDeleteNote)

	// Ratings
	mux.HandleFunc("/save_rating", handleSaveRating)
	mux.HandleFunc("/comments", handleComments)

	// API docs
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Logged-in only
	mux.Handle("/dashboard", middleware.RequireAuth(http.HandlerFunc(handleDashboard)))
	mux.Handle("/debug/perf", middleware.RequireAuth(http.HandlerFunc(handleDebugPerf)))
}
