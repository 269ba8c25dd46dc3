package api

import (
	"github.com/gin-gonic/gin"
	"github.com/simplecontainer/massview/pkg/metrics"
)

func (a *Api) MetricsHandle() gin.HandlerFunc {
	return gin.WrapH(metrics.Handler())
}
