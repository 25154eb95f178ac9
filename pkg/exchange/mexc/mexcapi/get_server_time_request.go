package mexcapi

//go:generate -command GetRequest requestgen -method GET

import (
	"time"

	"github.com/c9s/requestgen"
)

type ServerTime struct {
	ServerTime Timestamp `json:"serverTime"`
}

func (t ServerTime) Time() time.Time {
	return t.ServerTime.Time()
}

func (t *ServerTime) Unmarshal(data []byte) error {
	return unmarshalPayload(data, t)
}

//go:generate GetRequest -url "/api/v3/time" -type GetServerTimeRequest -responseType .ServerTime
type GetServerTimeRequest struct {
	client requestgen.APIClient
}

func (c *RestClient) NewGetServerTimeRequest() *GetServerTimeRequest {
	return &GetServerTimeRequest{client: c}
}
