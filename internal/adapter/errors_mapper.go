package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	backendErr := &BackendError{}
	// a non-JSON body (proxy error pages) leaves Message empty
	_ = json.Unmarshal(resp.Body(), backendErr)
	backendErr.Status = resp.StatusCode()

	return backendErr
}
