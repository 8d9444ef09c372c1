package router

import "go.uber.org/fx"

// Module provides the configured gin engine.
var Module = fx.Provide(Setup)
