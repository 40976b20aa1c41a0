package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogdash/internal/handlers"
	"blogdash/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	for _, mw := range middlewares.Logging(s.logger) {
		r.Use(mux.MiddlewareFunc(mw))
	}
	r.Use(middlewares.Instrument)
	r.Use(middlewares.NewCors(s.origins))

	ch := handlers.NewCommonHandler(s.db)
	r.HandleFunc("/health", ch.HealthHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	if s.limiter != nil {
		api.Use(s.limiter.Limit)
	}

	s.registerUserRoutes(api)
	s.registerCategoryRoutes(api)
	s.registerBlogRoutes(api)

	return r
}

func (s *Server) registerUserRoutes(r *mux.Router) {
	uh := handlers.NewUserHandler(s.userService)
	r.HandleFunc("/users", uh.GetUsers).Methods("GET", "OPTIONS")
	r.HandleFunc("/users", uh.CreateUser).Methods("POST", "OPTIONS")
	r.HandleFunc("/users", uh.UpdateUser).Methods("PATCH", "OPTIONS")
	r.HandleFunc("/users", uh.DeleteUser).Methods("DELETE", "OPTIONS")
}

func (s *Server) registerCategoryRoutes(r *mux.Router) {
	ch := handlers.NewCategoryHandler(s.categoryService, s.policy)
	r.HandleFunc("/categories", ch.GetCategories).Methods("GET", "OPTIONS")
	r.HandleFunc("/categories", ch.AddCategory).Methods("POST", "OPTIONS")
	r.HandleFunc("/categories/{category}", ch.GetCategoryByID).Methods("GET", "OPTIONS")
	r.HandleFunc("/categories/{category}", ch.UpdateCategory).Methods("PATCH", "OPTIONS")
	r.HandleFunc("/categories/{category}", ch.DeleteCategory).Methods("DELETE", "OPTIONS")
}

func (s *Server) registerBlogRoutes(r *mux.Router) {
	bh := handlers.NewBlogHandler(s.blogService, s.policy)
	r.HandleFunc("/blogs", bh.GetBlogs).Methods("GET", "OPTIONS")
	r.HandleFunc("/blogs", bh.AddBlog).Methods("POST", "OPTIONS")
	r.HandleFunc("/blogs/{blog}", bh.GetBlogByID).Methods("GET", "OPTIONS")
	r.HandleFunc("/blogs/{blog}", bh.UpdateBlog).Methods("PATCH", "OPTIONS")
	r.HandleFunc("/blogs/{blog}", bh.DeleteBlog).Methods("DELETE", "OPTIONS")
}
