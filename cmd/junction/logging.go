package main

import (
	"log/slog"

	"github.com/spf13/viper"

	"github.com/junctionio/junction/core/logger"
)

func setupLogging() {
	env := viper.GetString("env")
	isProd := env == "prod" || env == "production"

	level := viper.GetString("log.level")
	if level == "" {
		if isProd {
			level = "info"
		} else {
			level = "debug"
		}
	}

	format := viper.GetString("log.format")
	if format == "" {
		if isProd {
			format = string(logger.FormatJSON)
		} else {
			format = string(logger.FormatDev)
		}
	}

	log := logger.NewFromConfig(logger.Config{
		Level:     level,
		Format:    format,
		AddSource: !isProd,
	}, logger.WithAttr(slog.String("app", rootCmd.Use)))

	logger.SetAsDefault(log)
}
