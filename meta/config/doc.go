// Package config defines the YAML/JSON configuration model used by the
// itemmeta command line as well as helper functions to load and validate the
// configuration file.
package config
