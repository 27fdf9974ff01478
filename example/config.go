package example

import "time"

//go:generate go run github.com/ecordell/partialgen -output=config_partial.go . Config Server

// Config represents a configuration struct for testing partialgen
type Config struct {
	Name     string         `json:"name"`
	Port     int            `json:"port" partially:"as_type=*int32"`
	Enabled  bool           `json:"enabled"`
	Timeout  *time.Duration `json:"timeout" partially:"transparent"`
	Tags     []string       `json:"tags" partially:"transparent"`
	Metadata map[string]interface{}
	Debug    bool `partially:"omit"`
}

// Server represents another example struct
//
//partially:rename="ServerPatch"
type Server struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	TLS     bool   `yaml:"tls"`
	Cert    string `yaml:"cert" partially:"rename=\"Certificate\""`
	Key     string `yaml:"key"`
	Workers int    `yaml:"workers" partially:"as_type=*uint"`
}
