package main

import (
	"os"
	"os/signal"
	"syscall"

	"ShopSmartGolang/internal/config"
	"ShopSmartGolang/pkg/log"
	"ShopSmartGolang/pkg/redis"
	"ShopSmartGolang/pkg/storeapi"
	websocketPkg "ShopSmartGolang/pkg/websocket"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()
	storeAPI := storeapi.New()
	hub := websocketPkg.NewHub()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithRedisServer(redisServer),
		config.WithStoreAPI(storeAPI),
		config.WithWebsocketHub(hub),
		config.WithMiddleware(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
