package logger

import "go.uber.org/fx"

// Module provides the service logger.
var Module = fx.Provide(New)
