package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/salonhub/booking-calendar/internal/config"
	"github.com/salonhub/booking-calendar/internal/db"
	"github.com/salonhub/booking-calendar/internal/model"
	"github.com/salonhub/booking-calendar/internal/repository"
	"github.com/salonhub/booking-calendar/internal/seed"
	"github.com/salonhub/booking-calendar/internal/server"
	"github.com/salonhub/booking-calendar/internal/service"
)

func main() {
	// 1. Подхватываем .env, если он есть.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// 2. Загружаем конфиг из env.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 3. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(&cfg.DB)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	// 4. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 5. Репозитории (реализации на GORM).
	serviceRepo := repository.NewGormServiceRepository(gormDB)
	masterRepo := repository.NewGormMasterRepository(gormDB)
	appointmentRepo := repository.NewGormAppointmentRepository(gormDB)

	// 6. Демо-данные при пустом каталоге.
	if cfg.SeedDemoData {
		if err := seed.Demo(context.Background(), serviceRepo, masterRepo, appointmentRepo); err != nil {
			log.Fatalf("seed demo data: %v", err)
		}
	}

	// 7. Сервис календаря и HTTP-слой.
	calendarSvc := service.NewCalendarService(serviceRepo, masterRepo, appointmentRepo, cfg.Calendar.WeekStart)
	srv := server.New(calendarSvc)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.HTTP.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(srv.Router())

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           server.LoggingMiddleware(corsHandler),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	log.Printf("booking calendar API listening on %s", cfg.HTTP.Addr)

	// 8. Запускаем сервер в горутине.
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http serve: %v", err)
		}
	}()

	// 9. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
