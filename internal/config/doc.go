// Package config holds the settings of the zrsa console program and their
// validation rules.
package config
