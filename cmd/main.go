// Package main is the entry point for the coffee-builder application.
//
// @title           Coffee Builder API
// @version         1.0.0
// @description     Prices custom coffee drinks built from flavor, grind, size, milk, syrups and toppings.
//
//	Clients can quote a complete selection in one call or keep a configurator session and change it step by step.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/coffee-builder
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for the builder front-end. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>" with the catalog:write scope. Required to publish catalogs when authentication is enabled.
//
// @tag.name        Catalog
// @tag.description Price table and its published versions
//
// @tag.name        Quote
// @tag.description Stateless pricing
//
// @tag.name        Sessions
// @tag.description Configurator sessions
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/guttosm/coffee-builder/docs" // swagger docs

	"github.com/guttosm/coffee-builder/config"
	"github.com/guttosm/coffee-builder/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	defer application.Close()

	server := app.NewServer(application.Handler(), cfg.Server.Port,
		app.WithRequestTimeout(cfg.Server.RequestTimeout),
	)

	if err := server.Run(context.Background()); err != nil {
		application.Close()
		log.Fatal().Err(err).Msg("Server error")
	}
}
