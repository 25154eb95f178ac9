package mexcapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
)

/*
MEXC spot v3 returns the payload object directly on success, and the error
shape below on failure (sometimes with a 2xx status):

	{
	    "code": 700002,
	    "msg": "Signature for this request is not valid."
	}
*/
type ErrorField struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
}

// APIResponse is the parsed envelope of a single http response.
type APIResponse struct {
	StatusCode int
	Body       json.RawMessage

	ErrorField
}

// ParseResponse classifies the response into a success payload, an API error or
// an undecodable body.
func ParseResponse(response *requestgen.Response) (*APIResponse, error) {
	return parseBody(response.StatusCode, response.Body)
}

func parseBody(statusCode int, data []byte) (*APIResponse, error) {
	apiResponse := &APIResponse{
		StatusCode: statusCode,
		Body:       data,
	}

	body := bytes.TrimSpace(data)
	if !json.Valid(body) {
		if !isSuccessStatus(statusCode) {
			// most likely an html or plain text page from a proxy in front of the api
			return apiResponse, &APIError{
				StatusCode: statusCode,
				Message:    statusMessage(statusCode, body),
			}
		}

		return apiResponse, &DecodeError{Body: data, Err: errors.New("invalid json body")}
	}

	if len(body) > 0 && body[0] == '{' {
		// success payloads may carry their own "code" field with a different type,
		// so a failed decode here only means this is not the error shape.
		var field ErrorField
		if err := json.Unmarshal(body, &field); err == nil {
			apiResponse.ErrorField = field
		}
	}

	if err := apiResponse.Validate(); err != nil {
		return apiResponse, err
	}

	return apiResponse, nil
}

// Validate returns an *APIError if the response represents an exchange error.
func (r *APIResponse) Validate() error {
	if !isSuccessStatus(r.StatusCode) {
		msg := r.Message
		if len(msg) == 0 {
			msg = statusMessage(r.StatusCode, r.Body)
		}

		return &APIError{StatusCode: r.StatusCode, Code: r.Code, Message: msg}
	}

	// batch style endpoints answer {"code":200, ...} on success
	if r.Code != 0 && r.Code != http.StatusOK {
		return &APIError{StatusCode: r.StatusCode, Code: r.Code, Message: r.Message}
	}

	return nil
}

// DecodeInto unmarshals the success payload into v.
func (r *APIResponse) DecodeInto(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &DecodeError{Body: r.Body, Err: err}
	}

	return nil
}

// unmarshalPayload runs a 2xx body through the envelope and decodes the payload
// into v. It backs the Unmarshal hooks of the response types, non-2xx
// responses never get here since SendRequest turns them into an *APIError.
func unmarshalPayload(data []byte, v interface{}) error {
	apiResponse, err := parseBody(http.StatusOK, data)
	if err != nil {
		return err
	}

	return apiResponse.DecodeInto(v)
}

func isSuccessStatus(c int) bool {
	return c >= 200 && c <= 299
}

func statusMessage(statusCode int, body []byte) string {
	text := strings.TrimSpace(htmlTagPattern.ReplaceAllLiteralString(string(body), ""))
	if len(text) == 0 {
		return http.StatusText(statusCode)
	}

	return truncateBody([]byte(text), 256)
}
