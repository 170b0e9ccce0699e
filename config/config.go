package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server  Server
	Backend Backend
	Auth    Auth
}

type Server struct {
	Port string
}

// Backend selects which ExamDataService implementation serves the API.
// Mode is one of "mock", "sheet", "remote".
type Backend struct {
	Mode              string
	QuestionSourceURL string
	RemoteBaseURL     string
	FetchTimeoutSecs  int
}

type Auth struct {
	JWTSecret     string
	TokenTTLHours int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("BACKEND_MODE", "mock")
	viper.SetDefault("FETCH_TIMEOUT_SECS", 30)
	viper.SetDefault("TOKEN_TTL_HOURS", 72)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Backend.Mode = viper.GetString("BACKEND_MODE")
	config.Backend.QuestionSourceURL = viper.GetString("QUESTION_SOURCE_URL")
	config.Backend.RemoteBaseURL = viper.GetString("REMOTE_BASE_URL")
	config.Backend.FetchTimeoutSecs = viper.GetInt("FETCH_TIMEOUT_SECS")
	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.TokenTTLHours = viper.GetInt("TOKEN_TTL_HOURS")

	log.Info().Str("mode", config.Backend.Mode).Str("port", config.Server.Port).Msg("Config loaded")
	return &config, nil
}
