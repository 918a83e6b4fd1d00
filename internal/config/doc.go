// Package config loads application configuration from environment variables
// using kelseyhightower/envconfig, with sane defaults when nothing is set.
package config
