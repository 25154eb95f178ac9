package mexcapi

//go:generate -command GetRequest requestgen -method GET

import (
	"github.com/c9s/requestgen"
)

// PingResponse is the empty object answered by /api/v3/ping.
type PingResponse struct{}

func (p *PingResponse) Unmarshal(data []byte) error {
	return unmarshalPayload(data, p)
}

//go:generate GetRequest -url "/api/v3/ping" -type PingRequest -responseType .PingResponse
type PingRequest struct {
	client requestgen.APIClient
}

func (c *RestClient) NewPingRequest() *PingRequest {
	return &PingRequest{client: c}
}
