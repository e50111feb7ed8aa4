package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/pagesmith/pagesmith-backend/internal/application"
	"github.com/pagesmith/pagesmith-backend/internal/presentation/rest"
	"github.com/pagesmith/pagesmith-backend/pkg/db"
	"github.com/pagesmith/pagesmith-backend/pkg/env"
)

func Init() {
	// .env is optional, real env vars win
	_ = godotenv.Load()

	// DB
	dbConfig := db.NewConfig()
	pool, err := pgxpool.New(context.Background(), dbConfig.GetDSN())
	if err != nil {
		log.Panicf("failed to create pool: %v", err)
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Panicf("failed to connect to db: %v", err)
	}
	uowFactory := db.NewUoWFactory(pool)

	commands := application.NewCollection(uowFactory)
	handler := rest.NewServer(commands)

	app := fiber.New(fiber.Config{
		IdleTimeout: 5 * time.Second,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     env.GetEnv("CORS_ORIGINS", "http://localhost:3000"),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))
	app.Use(rest.RequestID())
	rest.RegisterHandlers(app, handler)

	go func() {
		if err := app.Listen(":" + env.GetEnv("PORT", "8080")); err != nil {
			log.Panic(err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	fmt.Println("Gracefully shutting down...")
	_ = app.Shutdown()

	pool.Close()
	fmt.Println("Fiber was successfully shutdown.")
}
