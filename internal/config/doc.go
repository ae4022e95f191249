// Package config manages user-level settings stored at ~/.artifactx/config.yaml.
// Values can be overridden with ARTIFACTX_* environment variables and are
// read through Viper.
package config
