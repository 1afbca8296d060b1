package main

import (
	"utsavam/internal/halls/handler"
	"utsavam/internal/halls/repository"
	"utsavam/internal/halls/service"
	"utsavam/internal/halls/validator"
	"utsavam/pkg/app"
	"utsavam/pkg/config"
)

const ServiceName = "halls"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Halls service")
	hallService := initServices(cfg)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewHallHandler(hallService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.HallService {
	hallValidator := validator.NewHallValidator(cfg.Log)
	hallRepo := repository.NewMongoHallRepository(cfg)
	bookingRefs := repository.NewMongoBookingRefRepository(cfg)
	hallService := service.NewHallService(hallRepo, bookingRefs, hallValidator, cfg)

	cfg.Log.Info("Hall service initialized", "database", cfg.MongoDatabaseName)
	return hallService
}
