package main

import (
	"context"
	"esign-sender/config"
	apiv1 "esign-sender/controllers/v1"
	_ "esign-sender/docs"
	"esign-sender/fiberlog"
	"esign-sender/initializers"
	"esign-sender/middleware"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

// @title ESign Sender API
// @version 1.0
// @description Сборка и отправка конвертов на электронную подпись
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)
	if config.Conf.Auth.JWTSecret == "" {
		log.Fatal("не задан JWT_SECRET")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 1024 * 1024,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())
	initSwagger(app)

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(middleware.WithBodyLimit(64 * 1024))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(middleware.AuthorizationRequired(config.Conf.Auth.JWTSecret))
	apiv1.InitEnvelopeApiRouters(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}

func initSwagger(app *fiber.App) {
	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))
}
