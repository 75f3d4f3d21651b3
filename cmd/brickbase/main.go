package main

import (
	"log"

	"brickbase-api-io/api/internal/auth"
	"brickbase-api-io/api/internal/common"
	"brickbase-api-io/api/internal/container"
	"brickbase-api-io/api/internal/middleware"
	"brickbase-api-io/api/internal/routers"
	"brickbase-api-io/api/pkg/util"
)

func main() {
	client := util.ConnectDB()

	dbName := util.LoadEnvFor("DB_NAME")
	if dbName == "" {
		dbName = common.DatabaseName
	}
	db := client.Database(dbName)

	rdb := util.ConnectRedis()

	verifier := auth.NewGoogleTokenVerifier()

	serviceContainer := container.NewServiceContainer(db, rdb, verifier)
	router := routers.InitRoute(serviceContainer, middleware.RateLimiter(rdb))

	addr := util.LoadEnvFor("LISTEN_ADDR")
	if addr == "" {
		addr = "0.0.0.0:8080"
	}

	if err := router.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
