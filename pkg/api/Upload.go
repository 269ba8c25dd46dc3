package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/simplecontainer/massview/pkg/analysis"
	"github.com/simplecontainer/massview/pkg/api/middlewares"
	"github.com/simplecontainer/massview/pkg/metrics"
	"github.com/simplecontainer/massview/pkg/parser"
	"github.com/simplecontainer/massview/pkg/static"
	"go.uber.org/zap"
)

const multipartMemory = 8 << 20

func (a *Api) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, a.Config.Upload.MaxBytes)

	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		if tooLarge(err) {
			a.reject(c, http.StatusRequestEntityTooLarge, static.RESPONSE_TOO_LARGE, err)
			return
		}

		a.reject(c, http.StatusBadRequest, static.RESPONSE_NO_FILE, err)
		return
	}

	form := c.Request.MultipartForm
	files := form.File["file"]

	if len(files) == 0 {
		// A file input submitted without a selection arrives as a plain value.
		if _, submitted := form.Value["file"]; submitted {
			a.reject(c, http.StatusBadRequest, static.RESPONSE_NO_SELECTION, nil)
			return
		}

		a.reject(c, http.StatusBadRequest, static.RESPONSE_NO_FILE, nil)
		return
	}

	header := files[0]

	if header.Filename == "" {
		a.reject(c, http.StatusBadRequest, static.RESPONSE_NO_SELECTION, nil)
		return
	}

	if !AllowedExtension(header.Filename) {
		a.reject(c, http.StatusBadRequest, static.RESPONSE_BAD_EXTENSION, nil)
		return
	}

	content, err := readFile(header)

	if err != nil {
		a.failed(c, err)
		return
	}

	dataset, err := parser.Parse(content)

	if err != nil {
		a.failed(c, err)
		return
	}

	metrics.EventsParsed.Observe(float64(dataset.Len()))

	if dataset.Empty() {
		a.reject(c, http.StatusBadRequest, static.RESPONSE_NO_DATA, nil)
		return
	}

	result, err := analysis.Analyze(dataset, analysis.Options{
		NumBins:     c.PostForm("num_bins"),
		LogScale:    c.PostForm("log_scale") == "true",
		ViewMode:    c.DefaultPostForm("view_mode", static.VIEW_ALL),
		DefaultBins: a.Config.Analysis.DefaultBins,
	})

	if err != nil {
		a.failed(c, err)
		return
	}

	a.Logger.Info("upload analyzed",
		zap.String("file", header.Filename),
		zap.String("size", humanize.IBytes(uint64(header.Size))),
		zap.Int("events", dataset.Len()),
		zap.Int("plots", len(result.Plots)),
		zap.String("requestId", c.GetString(middlewares.RequestIDKey)),
	)

	metrics.Uploads.Increment(strconv.Itoa(http.StatusOK))
	c.JSON(http.StatusOK, result)
}

func AllowedExtension(filename string) bool {
	extension := strings.ToLower(filepath.Ext(filename))

	for _, allowed := range static.ALLOWED_EXTENSIONS {
		if extension == allowed {
			return true
		}
	}

	return false
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()

	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}

	defer file.Close()

	content, err := io.ReadAll(file)

	return content, errors.Wrap(err, "failed to read uploaded file")
}

func tooLarge(err error) bool {
	var maxBytesError *http.MaxBytesError

	if errors.As(err, &maxBytesError) {
		return true
	}

	return strings.Contains(err.Error(), "request body too large")
}

func (a *Api) reject(c *gin.Context, status int, explanation string, err error) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("reason", explanation),
		zap.String("requestId", c.GetString(middlewares.RequestIDKey)),
	}

	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	a.Logger.Info("upload rejected", fields...)

	metrics.Uploads.Increment(strconv.Itoa(status))
	c.AbortWithStatusJSON(status, gin.H{"error": explanation})
}

func (a *Api) failed(c *gin.Context, err error) {
	a.Logger.Error("upload processing failed",
		zap.Error(err),
		zap.String("requestId", c.GetString(middlewares.RequestIDKey)),
	)

	metrics.Uploads.Increment(strconv.Itoa(http.StatusInternalServerError))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": fmt.Sprintf("%s: %s", static.RESPONSE_PROCESSING, err.Error()),
	})
}
