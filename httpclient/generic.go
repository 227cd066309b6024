//nolint:ireturn
package httpclient

import (
	"context"
	"net/http"
)

func SendJSON[T any](ctx context.Context, c *Client, req Request, opts ...RequestOption) (T, error) {
	var result T
	err := c.Do(ctx, req, &result, opts...)

	return result, err
}

func PostJSON[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	return SendJSON[T](ctx, c, Request{Method: http.MethodPost, Path: path, Body: body}, opts...)
}
