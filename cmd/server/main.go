package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "weather-api/docs"
	"weather-api/internal/config"
	"weather-api/internal/domain/user"
	"weather-api/internal/domain/weather"
	api "weather-api/internal/http"
	"weather-api/internal/metrics"
	"weather-api/internal/platform/database"
	"weather-api/internal/platform/openweather"
	"weather-api/internal/repository/postgres"
)

// @title           Weather API
// @version         1.0
// @description     Register an email, fetch current weather by US zip code, browse request history
// @BasePath        /api/v1
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.NewPostgres(ctx, cfg.DB_DSN)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.Close()

	metrics.Register()

	userRepo := postgres.NewUserRepo(db)
	logRepo := postgres.NewWeatherLogRepo(db)

	userSvc := user.NewService(userRepo)
	weatherSvc := weather.NewService(openweather.New(cfg.WeatherAPIURL, cfg.WeatherAPIKey), logRepo)

	router := api.NewRouter(userSvc, weatherSvc, db)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	<-stop
	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown error: %v", err)
	}

	log.Println("server stopped")
}
