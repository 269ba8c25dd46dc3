package api

import (
	"embed"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/simplecontainer/massview/pkg/static"
)

//go:embed templates/*.html
var templates embed.FS

func (a *Api) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Version":     a.Version.Service,
		"MaxUpload":   humanize.IBytes(uint64(a.Config.Upload.MaxBytes)),
		"DefaultBins": a.Config.Analysis.DefaultBins,
		"Views": []string{
			static.VIEW_ALL,
			static.VIEW_DILEPTON,
			static.VIEW_FOURLEPTON,
			static.VIEW_DIPHOTON,
		},
	})
}
