package api

import (
	"github.com/simplecontainer/massview/pkg/configuration"
	"github.com/simplecontainer/massview/pkg/version"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Api struct {
	Config  *configuration.Configuration
	Version *version.Version
	Logger  *zap.Logger
	limiter *rate.Limiter
}
