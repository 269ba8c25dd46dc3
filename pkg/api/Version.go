package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/simplecontainer/massview/pkg/contracts/iresponse"
	"github.com/simplecontainer/massview/pkg/static"
)

func (a *Api) DisplayVersion(c *gin.Context) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	bytes, err := json.Marshal(a.Version)

	if err != nil {
		c.JSON(http.StatusInternalServerError, iresponse.New(http.StatusInternalServerError, static.RESPONSE_INTERNAL_ERROR, err, nil))
		return
	}

	c.JSON(http.StatusOK, iresponse.New(http.StatusOK, static.RESPONSE_VERSION, nil, bytes))
}
