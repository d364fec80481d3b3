// @title           Meal Diary API
// @version         1.0
// @host            localhost
// @schemes         http https
// @BasePath        /
package main

import (
	"context"
	"log"
	"net/http"

	"dziennik-posilkow/internal/api"
	"dziennik-posilkow/internal/config"
	"dziennik-posilkow/internal/database"
	"dziennik-posilkow/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "dziennik-posilkow/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Nie można wczytać konfiguracji: %v", err)
	}

	dbpool, err := pgxpool.New(context.Background(), cfg.DB.Source)
	if err != nil {
		log.Fatalf("Nie można połączyć się z bazą danych: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("Nie można pingować bazy danych: %v", err)
	}
	log.Println("Pomyślnie połączono z bazą danych")

	sessions, err := session.NewResolver(cfg.Session.CookieName, cfg.Session.MaxAgeDays)
	if err != nil {
		log.Fatalf("Nie można zainicjować generatora sesji: %v", err)
	}

	store := database.NewStore(dbpool)
	server := api.NewServer(cfg, store, sessions)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(api.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("https://localhost/swagger/doc.json"),
	))

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/meals", func(r chi.Router) {
		r.Use(server.SessionMiddleware)
		r.Get("/", server.ListMealsHandler)
		r.Post("/", server.CreateMealHandler)
		r.Get("/summary", server.MealSummaryHandler)

		r.Route("/{mealId}", func(r chi.Router) {
			r.Use(server.RequireMealOwnership)
			r.Get("/", server.GetMealHandler)
			r.Put("/", server.UpdateMealHandler)
			r.Delete("/", server.DeleteMealHandler)
		})
	})

	log.Printf("Uruchamianie serwera na %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		log.Fatalf("Nie można uruchomić serwera: %v", err)
	}
}
