package config

import "go.uber.org/fx"

// Module provides configuration to the fx graph.
var Module = fx.Provide(Load)
