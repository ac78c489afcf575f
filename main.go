// @title Master Defence Scoring API
// @version 1.0
// @description Backend API collecting judge score sheets and serving the live leaderboard
package main

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	_ "github.com/z-labo/master-defence-faculty/docs"

	"github.com/z-labo/master-defence-faculty/api"
	"github.com/z-labo/master-defence-faculty/logging"
)

func main() {
	logging.BoostrapLogger()

	// Load env, optional .env for local runs
	if err := godotenv.Load(); err == nil {
		logging.Log.Info("Loaded .env file")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Warnf("No config file found, relying on environment: %v", err)
	}

	// Read config
	config := api.ReadConfig()

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
