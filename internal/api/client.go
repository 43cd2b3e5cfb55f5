package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

func newHTTPClient() *fasthttp.Client {
	return &fasthttp.Client{
		MaxConnsPerHost:     100,
		ReadTimeout:         10 * time.Second,
		WriteTimeout:        10 * time.Second,
		MaxIdleConnDuration: 1 * time.Minute,
	}
}

// doRaw issues a GET and returns the raw response body. Status mapping:
// 404 and 204 become ErrNotFound, 401/403 become ErrInvalidCredentials,
// any other non-200 becomes *HTTPError.
func doRaw(ctx context.Context, client *fasthttp.Client, url string, headers map[string]string, inspect func(*fasthttp.Response)) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if inspect != nil {
		inspect(resp)
	}

	switch resp.StatusCode() {
	case fasthttp.StatusOK:
	case fasthttp.StatusNoContent, fasthttp.StatusNotFound:
		return nil, ErrNotFound
	case fasthttp.StatusUnauthorized, fasthttp.StatusForbidden:
		return nil, ErrInvalidCredentials
	default:
		return nil, &HTTPError{StatusCode: resp.StatusCode(), URL: url}
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

func doJSON[T any](ctx context.Context, client *fasthttp.Client, url string, headers map[string]string, inspect func(*fasthttp.Response)) (*T, error) {
	body, err := doRaw(ctx, client, url, headers, inspect)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return &result, nil
}
