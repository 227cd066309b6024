// Package easybill exposes the operations of the easybill REST API as typed
// parameter objects. Every operation validates its parameters, turns them into
// an httpclient.Request and sends it through the rate limit aware gateway.
package easybill

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/andyle182810/easybill/authtoken"
	"github.com/andyle182810/easybill/httpclient"
	"github.com/andyle182810/easybill/pagination"
	"github.com/andyle182810/easybill/validator"
)

const (
	DefaultBaseURL   = "https://api.easybill.de/rest/v1"
	DefaultUserAgent = "easybill-go"
)

var (
	ErrInvalidParams    = errors.New("easybill: invalid params")
	ErrUnknownOperation = errors.New("easybill: unknown operation")
)

// Params is implemented by every operation's parameter object.
type Params interface {
	Request() (httpclient.Request, error)
}

// PagedParams are list parameters whose page can be advanced by ListAll.
type PagedParams interface {
	Params
	setPage(page int)
}

type Client struct {
	api       *httpclient.Client
	validator *validator.Validator
}

// New returns a client for the production API authenticating with apiKey.
func New(apiKey string, opts ...httpclient.Option) *Client {
	return NewWithBaseURL(DefaultBaseURL, apiKey, opts...)
}

func NewWithBaseURL(baseURL, apiKey string, opts ...httpclient.Option) *Client {
	allOpts := make([]httpclient.Option, 0, len(opts)+2) //nolint:mnd
	allOpts = append(allOpts,
		httpclient.WithTokenProvider(authtoken.New(apiKey)),
		httpclient.WithDefaultHeaders(map[string]string{"User-Agent": DefaultUserAgent}),
	)
	allOpts = append(allOpts, opts...)

	return NewFromHTTPClient(httpclient.New(baseURL, allOpts...))
}

func NewFromHTTPClient(api *httpclient.Client) *Client {
	v := validator.Default()
	v.RegisterCustomType(func(field reflect.Value) any {
		if amount, ok := field.Interface().(Amount); ok {
			f, _ := amount.Float64()

			return f
		}

		return nil
	}, Amount{})

	return &Client{
		api:       api,
		validator: v,
	}
}

// Prepare validates p and builds its request without sending it.
func (c *Client) Prepare(p Params) (httpclient.Request, error) {
	if err := c.validator.Validate(p); err != nil {
		return httpclient.Request{}, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	req, err := p.Request()
	if err != nil {
		return httpclient.Request{}, err
	}

	return req, nil
}

// Run executes the operation described by p and returns the raw response body.
func (c *Client) Run(ctx context.Context, p Params, opts ...httpclient.RequestOption) (json.RawMessage, error) {
	req, err := c.Prepare(p)
	if err != nil {
		return nil, err
	}

	return c.api.Send(ctx, req, opts...)
}

// Verify checks the configured API key with a customer list request.
func (c *Client) Verify(ctx context.Context) error {
	_, err := c.api.Send(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   customersPath,
		Query:  map[string]any{"limit": 1},
	})
	if err != nil {
		return fmt.Errorf("easybill: credential check failed: %w", err)
	}

	return nil
}

// Call runs p and decodes the response into T.
//
//nolint:ireturn
func Call[T any](ctx context.Context, c *Client, p Params, opts ...httpclient.RequestOption) (T, error) {
	var result T

	req, err := c.Prepare(p)
	if err != nil {
		return result, err
	}

	err = c.api.Do(ctx, req, &result, opts...)

	return result, err
}

// ListAll walks every page of a list operation starting at page one.
func ListAll[T any](ctx context.Context, c *Client, p PagedParams, opts ...httpclient.RequestOption) ([]T, error) {
	var all []T

	for page := pagination.DefaultPage; ; page++ {
		p.setPage(page)

		result, err := Call[Page[T]](ctx, c, p, opts...)
		if err != nil {
			return nil, err
		}

		all = append(all, result.Items...)

		if len(result.Items) == 0 || !pagination.HasNext(result.Page, result.Pages) {
			return all, nil
		}
	}
}
