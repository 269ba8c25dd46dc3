package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simplecontainer/massview/pkg/contracts/iresponse"
	"github.com/simplecontainer/massview/pkg/static"
)

func (a *Api) Health(c *gin.Context) {
	c.JSON(http.StatusOK, iresponse.New(http.StatusOK, static.RESPONSE_HEALTHY, nil, nil))
}
