package api

import (
	"context"
	"fmt"

	"github.com/valyala/fasthttp"
)

const wynncraftPlayerURL = "https://api.wynncraft.com/v3/player/%s"

type WynncraftClient struct {
	client *fasthttp.Client
}

func NewWynncraftClient() *WynncraftClient {
	return &WynncraftClient{client: newHTTPClient()}
}

type wynncraftPlayerResponse struct {
	Online bool `json:"online"`
}

// IsOnline reports whether the player is currently on Wynncraft.
func (c *WynncraftClient) IsOnline(ctx context.Context, name string) (bool, error) {
	resp, err := doJSON[wynncraftPlayerResponse](ctx, c.client, fmt.Sprintf(wynncraftPlayerURL, name), nil, nil)
	if err != nil {
		return false, err
	}
	return resp.Online, nil
}
