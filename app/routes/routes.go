package routes

import (
	"net/http"

	"blogapi/app/controllers"
	"blogapi/app/middleware"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes and returns a router, using
// the provided Badger DB.
func SetupRoutes(db *badger.DB) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	userController := controllers.NewUserControllerWithDB(db)
	postController := controllers.NewPostControllerWithDB(db)

	// Users endpoints
	users := router.PathPrefix("/users").Subrouter()
	users.HandleFunc("", userController.Index).Methods("GET")
	users.HandleFunc("", userController.Create).Methods("POST")
	users.HandleFunc("/{id}", userController.Show).Methods("GET")
	users.HandleFunc("/{id}", userController.Edit).Methods("PUT")
	users.HandleFunc("/{id}", userController.Delete).Methods("DELETE")

	// Posts endpoints
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}", postController.Edit).Methods("PUT")
	posts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
