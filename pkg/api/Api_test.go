package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/simplecontainer/massview/pkg/configuration"
	"github.com/simplecontainer/massview/pkg/contracts/iresponse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sample = "3.1,1\n91.2,2\n125.0,3\n124.8,1,4ee\n125.4,2,4mm\n"

func newTestApi(mutate func(c *configuration.Configuration)) *Api {
	gin.SetMode(gin.TestMode)

	conf := configuration.NewConfig()
	conf.Upload.RateLimit = 0

	if mutate != nil {
		mutate(conf)
	}

	return NewApi(conf, zap.NewNop())
}

type part struct {
	field    string
	filename string
	content  string
	file     bool
}

func multipartRequest(t *testing.T, parts ...part) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, p := range parts {
		if p.file {
			w, err := writer.CreateFormFile(p.field, p.filename)
			require.NoError(t, err)

			_, err = w.Write([]byte(p.content))
			require.NoError(t, err)
			continue
		}

		require.NoError(t, writer.WriteField(p.field, p.content))
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func serve(a *Api, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.Routes().ServeHTTP(w, req)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))

	return decoded
}

func TestUpload_Rejections(t *testing.T) {
	type Wanted struct {
		status int
		error  string
	}

	testCases := []struct {
		name    string
		wanted  Wanted
		request func(t *testing.T) *http.Request
	}{
		{
			"No file part",
			Wanted{http.StatusBadRequest, "No file uploaded"},
			func(t *testing.T) *http.Request {
				return multipartRequest(t, part{field: "num_bins", content: "10"})
			},
		},
		{
			"Not multipart",
			Wanted{http.StatusBadRequest, "No file uploaded"},
			func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("3.1,1"))
			},
		},
		{
			"Empty selection",
			Wanted{http.StatusBadRequest, "No file selected"},
			func(t *testing.T) *http.Request {
				return multipartRequest(t, part{field: "file", filename: "", file: true})
			},
		},
		{
			"Wrong extension",
			Wanted{http.StatusBadRequest, "Only CSV and TXT files are allowed"},
			func(t *testing.T) *http.Request {
				return multipartRequest(t, part{field: "file", filename: "events.json", content: sample, file: true})
			},
		},
		{
			"No valid rows",
			Wanted{http.StatusBadRequest, "No valid data found in file"},
			func(t *testing.T) *http.Request {
				return multipartRequest(t, part{field: "file", filename: "events.csv", content: "mass,type\nfoo,bar\n", file: true})
			},
		},
		{
			"Invalid encoding",
			Wanted{http.StatusInternalServerError, "Error processing file: content is not valid UTF-8"},
			func(t *testing.T) *http.Request {
				return multipartRequest(t, part{field: "file", filename: "events.csv", content: "1.0,1\n\xff,2\n", file: true})
			},
		},
	}

	a := newTestApi(nil)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(a, tc.request(t))

			assert.Equal(t, tc.wanted.status, w.Code)
			assert.Equal(t, tc.wanted.error, decode(t, w)["error"])
		})
	}
}

func TestUpload_TooLarge(t *testing.T) {
	a := newTestApi(func(c *configuration.Configuration) {
		c.Upload.MaxBytes = 64
	})

	w := serve(a, multipartRequest(t, part{field: "file", filename: "events.csv", content: strings.Repeat(sample, 20), file: true}))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "File too large", decode(t, w)["error"])
}

func TestUpload_Success(t *testing.T) {
	testCases := []struct {
		name  string
		mode  string
		plots []string
	}{
		{"All views", "all", []string{"dilepton", "fourlepton", "diphoton"}},
		{"Default view", "", []string{"dilepton", "fourlepton", "diphoton"}},
		{"Dilepton only", "dilepton", []string{"dilepton"}},
		{"Diphoton only", "diphoton", []string{"diphoton"}},
		{"Unknown view", "gluons", []string{}},
	}

	a := newTestApi(nil)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parts := []part{
				{field: "file", filename: "EVENTS.TXT", content: sample, file: true},
				{field: "num_bins", content: "25"},
				{field: "log_scale", content: "true"},
			}

			if tc.mode != "" {
				parts = append(parts, part{field: "view_mode", content: tc.mode})
			}

			w := serve(a, multipartRequest(t, parts...))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			decoded := decode(t, w)

			plots := decoded["plots"].(map[string]interface{})
			names := make([]string, 0, len(plots))

			for name, encoded := range plots {
				names = append(names, name)
				assert.Contains(t, encoded.(string), `"nbinsx":25`)
				assert.Contains(t, encoded.(string), `"type":"log"`)
			}

			assert.ElementsMatch(t, tc.plots, names)

			stats := decoded["statistics"].(map[string]interface{})
			assert.Len(t, stats["electrons"], 6)
			assert.Len(t, stats["muons"], 6)
			assert.Len(t, stats["photons"], 6)
		})
	}
}

func TestUpload_TabSeparated(t *testing.T) {
	a := newTestApi(nil)

	w := serve(a, multipartRequest(t, part{field: "file", filename: "events.txt", content: "3.0\t1\n3.5\t1\n", file: true}))
	require.Equal(t, http.StatusOK, w.Code)

	stats := decode(t, w)["statistics"].(map[string]interface{})
	first := stats["electrons"].([]interface{})[0].(map[string]interface{})

	assert.Equal(t, float64(2), first["events"])
	assert.Equal(t, 3.25, first["mean"])
}

func TestUpload_RateLimited(t *testing.T) {
	a := newTestApi(func(c *configuration.Configuration) {
		c.Upload.RateLimit = 0.001
		c.Upload.Burst = 1
	})

	router := a.Routes()

	first := httptest.NewRecorder()
	router.ServeHTTP(first, multipartRequest(t, part{field: "file", filename: "a.csv", content: sample, file: true}))

	second := httptest.NewRecorder()
	router.ServeHTTP(second, multipartRequest(t, part{field: "file", filename: "a.csv", content: sample, file: true}))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestHealth(t *testing.T) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	w := serve(newTestApi(nil), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	response := iresponse.Response{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.True(t, response.Success)
	assert.Equal(t, "service is healthy", response.Explanation)
}

func TestDisplayVersion(t *testing.T) {
	a := newTestApi(nil)
	a.Version.Service = "1.2.3"

	w := serve(a, httptest.NewRequest(http.MethodGet, "/version", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Body.String(), `"service":"1.2.3"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestIndex(t *testing.T) {
	w := serve(newTestApi(nil), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="num_bins"`)
	assert.Contains(t, w.Body.String(), "32 MiB")
	assert.Contains(t, w.Body.String(), `<option value="fourlepton">`)
}

func TestMetrics(t *testing.T) {
	a := newTestApi(nil)
	router := a.Routes()

	router.ServeHTTP(httptest.NewRecorder(), multipartRequest(t, part{field: "file", filename: "a.csv", content: sample, file: true}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "massview_uploads_total")
	assert.Contains(t, w.Body.String(), "massview_events_parsed")
}

func TestAllowedExtension(t *testing.T) {
	assert.True(t, AllowedExtension("data.csv"))
	assert.True(t, AllowedExtension("DATA.TXT"))
	assert.False(t, AllowedExtension("data.csv.gz"))
	assert.False(t, AllowedExtension("csv"))
}
