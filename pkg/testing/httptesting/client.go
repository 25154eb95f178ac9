package httptesting

import (
	"net/http"
)

// EchoSave replies every request with the same content and, when saveTo is
// given, stores the latest request there so tests can inspect it.
type EchoSave struct {
	saveTo     **http.Request
	statusCode int
	content    string
	err        error
}

func (st *EchoSave) RoundTrip(req *http.Request) (*http.Response, error) {
	if st.saveTo != nil {
		*st.saveTo = req
	}

	if st.err != nil {
		return nil, st.err
	}

	statusCode := st.statusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	resp := BuildResponseString(statusCode, st.content)
	SetHeader(resp, "Content-Type", "application/json")
	return resp, nil
}

func HttpClientWithContent(content string) *http.Client {
	transport := EchoSave{content: content}
	return &http.Client{Transport: &transport}
}

func HttpClientWithStatus(statusCode int, content string) *http.Client {
	transport := EchoSave{statusCode: statusCode, content: content}
	return &http.Client{Transport: &transport}
}

func HttpClientWithError(err error) *http.Client {
	transport := EchoSave{err: err}
	return &http.Client{Transport: &transport}
}

// HttpClientSaver saves the *http.Request in the local variable provided by the caller.
func HttpClientSaver(saved **http.Request, content string) *http.Client {
	transport := EchoSave{saveTo: saved, content: content}
	return &http.Client{Transport: &transport}
}
