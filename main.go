package main

import (
	"os"

	"golang-sportplans/config"
	controller "golang-sportplans/controllers"
	"golang-sportplans/database"
	"golang-sportplans/helpers"
	routes "golang-sportplans/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	setupLogging(cfg)
	gin.SetMode(cfg.GinMode)

	db, err := database.DBInstance(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to database")
	}
	defer db.Close()

	tokens := helpers.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiry)
	ctl := controller.New(database.NewStore(db), tokens)
	router := routes.Setup(ctl, tokens, cfg.CORS.AllowedOrigins)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.GinMode == gin.DebugMode {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
