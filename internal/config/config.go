package config

import "time"

// Overseer serves the task API.
type Overseer struct {
	Name           string        `mapstructure:"name" validate:"required"`
	Port           uint16        `mapstructure:"port" validate:"required"`
	DB             Database      `mapstructure:"db" validate:"required"`
	HealthInterval time.Duration `mapstructure:"health_interval" validate:"omitempty,gte=100ms"`
}

// Database selects and addresses the task store.
// For postgres and sqlite, Conn already names the database and DB is unused.
type Database struct {
	Driver     string `mapstructure:"driver" validate:"oneof=mongo postgres sqlite memory"`
	Conn       string `mapstructure:"conn" validate:"required_unless=Driver memory"`
	DB         string `mapstructure:"db" validate:"required_if=Driver mongo"`
	Collection string `mapstructure:"collection"`
}

// Guardian serves the login endpoint.
type Guardian struct {
	Name string `mapstructure:"name" validate:"required"`
	Port uint16 `mapstructure:"port" validate:"required"`
}

// Pioneer serves the static service directory.
type Pioneer struct {
	Name     string        `mapstructure:"name" validate:"required"`
	Port     uint16        `mapstructure:"port" validate:"required"`
	Services []ServiceData `mapstructure:"services" validate:"dive"`
}

type ServiceData struct {
	Name string `mapstructure:"name" json:"name" validate:"required"`
	URI  string `mapstructure:"uri" json:"uri" validate:"required,uri"`
}

func (c *Overseer) setDefaults() {
	if c.DB.Driver == "" {
		c.DB.Driver = "mongo"
	}
	if c.HealthInterval == 0 {
		c.HealthInterval = 5 * time.Second
	}
}
