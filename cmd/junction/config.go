package main

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/junctionio/junction/core/server"
)

func init() {
	setDefaults()
}

func setDefaults() {
	srv := server.DefaultConfig()
	viper.SetDefault("server.addr", srv.Addr)
	viper.SetDefault("server.read_timeout", srv.ReadTimeout)
	viper.SetDefault("server.write_timeout", srv.WriteTimeout)
	viper.SetDefault("server.idle_timeout", srv.IdleTimeout)
	viper.SetDefault("server.shutdown_timeout", srv.ShutdownTimeout)
	viper.SetDefault("server.max_header_bytes", srv.MaxHeaderBytes)

	viper.SetDefault("static.dir", "./public")
	viper.SetDefault("static.prefix", "/")

	viper.SetDefault("cors.enabled", false)

	viper.SetDefault("log.level", "")
	viper.SetDefault("log.format", "")
}

func readConfig(cmd *cobra.Command) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		slog.Warn("failed to bind flags", "err", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("JUNCTION")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			slog.Warn("error reading config file", "err", err)
		}
	}
}

func serverConfig() server.Config {
	return server.Config{
		Addr:            viper.GetString("server.addr"),
		ReadTimeout:     viper.GetDuration("server.read_timeout"),
		WriteTimeout:    viper.GetDuration("server.write_timeout"),
		IdleTimeout:     viper.GetDuration("server.idle_timeout"),
		ShutdownTimeout: viper.GetDuration("server.shutdown_timeout"),
		MaxHeaderBytes:  viper.GetInt("server.max_header_bytes"),
	}
}
