package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	apperrors "utsavam/pkg/errors"
	"utsavam/pkg/model"
)

// HallRegistryClient is the booking core's read-only view of the hall
// registry. Transport failures surface as SERVICE_UNAVAILABLE, never as
// "hall not found"; only a definitive 404 from the registry means that.
type HallRegistryClient struct {
	httpClient *HttpClient
}

func NewHallRegistryClient(baseURL string, timeout time.Duration) *HallRegistryClient {
	return &HallRegistryClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

// Lookup fetches the flat registry projection for a hall.
func (c *HallRegistryClient) Lookup(ctx context.Context, hallID string) (*model.HallInfo, error) {
	path := "/api/v1/halls/id/" + url.PathEscape(hallID) + "/info"

	resp, err := c.httpClient.GET(ctx, path)
	if err != nil {
		return nil, apperrors.Unavailable("hall registry", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return nil, apperrors.NotFoundWithID("hall", hallID)
	default:
		return nil, apperrors.Unavailable("hall registry", nil).WithDetails(map[string]any{
			"status": resp.StatusCode,
		})
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, apperrors.Unavailable("hall registry", err)
	}

	var info model.HallInfo
	if err := json.Unmarshal(wrapper.Data, &info); err != nil {
		return nil, apperrors.Unavailable("hall registry", err)
	}

	return &info, nil
}
