package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct{}

// New wires viper to the optional config.yaml in the working directory
// and to the environment. Every key has a default, so a missing file
// is not an error.
func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}

	config := &Config{}
	return config, nil
}
