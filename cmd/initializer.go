package main

import (
	"database/sql"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/handlers"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/repositories"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/services"
)

type application struct {
	logger         *zap.SugaredLogger
	facade         *services.Facade
	userHandler    *handlers.UserHandler
	placeHandler   *handlers.PlaceHandler
	reviewHandler  *handlers.ReviewHandler
	amenityHandler *handlers.AmenityHandler
	authHandler    *handlers.AuthHandler
	db             *sql.DB
	rdb            *redis.Client
}

func initializeApp(facade *services.Facade, db *sql.DB, rdb *redis.Client, logger *zap.SugaredLogger) *application {
	return &application{
		logger:         logger,
		facade:         facade,
		userHandler:    &handlers.UserHandler{Service: facade.Users, Logger: logger},
		placeHandler:   &handlers.PlaceHandler{Service: facade.Places, Logger: logger},
		reviewHandler:  &handlers.ReviewHandler{Service: facade.Reviews, Logger: logger},
		amenityHandler: &handlers.AmenityHandler{Service: facade.Amenities, Logger: logger},
		authHandler:    &handlers.AuthHandler{Service: facade.Auth, Logger: logger},
		db:             db,
		rdb:            rdb,
	}
}

// sessionStore picks Redis when a client is configured.
func sessionStore(rdb *redis.Client) repositories.SessionStore {
	if rdb != nil {
		return repositories.NewRedisSessionRepository(rdb)
	}
	return repositories.NewMemorySessionRepository()
}
