package iresponse

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope used by the service endpoints. Upload keeps
// its own flat shape so existing frontends keep working.
type Response struct {
	HttpStatus       int
	Explanation      string
	ErrorExplanation string
	Error            bool
	Success          bool
	Data             json.RawMessage
}

func New(status int, explanation string, err error, data []byte) Response {
	errString := ""
	if err != nil {
		errString = err.Error()
	}

	return Response{
		HttpStatus:       status,
		Explanation:      explanation,
		ErrorExplanation: errString,
		Error:            err != nil,
		Success:          status == http.StatusOK,
		Data:             data,
	}
}
