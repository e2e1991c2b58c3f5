package main

import (
	"github.com/dmitrymomot/viewkit/core/server"
	"github.com/dmitrymomot/viewkit/core/view"
)

type Config struct {
	AppName string `env:"APP_NAME" envDefault:"viewkit"`
	LogJSON bool   `env:"LOG_JSON" envDefault:"false"`
	Index   string `env:"VIEW_INDEX" envDefault:"index"`
	Options string `env:"VIEW_OPTIONS_FILE"`
	Server  server.Config
	View    view.Config
}
