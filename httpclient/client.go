package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// Sleeper waits between rate limited attempts.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ Doer = (*http.Client)(nil)

// Client sends requests to a single REST API. It keeps no per-call state and
// is safe for concurrent use.
type Client struct {
	baseURL         string
	httpClient      Doer
	defaultHeaders  map[string]string
	tokenProvider   TokenProvider
	maxResponseSize int64 // 0 means no limit
	maxRetries      int
	retryDelay      time.Duration
	sleeper         Sleeper
	limiter         *rate.Limiter
	describer       *describer
	logger          zerolog.Logger
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{ //nolint:exhaustruct
			Timeout: DefaultTimeout,
		},
		defaultHeaders: map[string]string{
			HeaderAccept:      ContentTypeJSON,
			HeaderContentType: ContentTypeJSON,
		},
		tokenProvider:   nil,
		maxResponseSize: 0,
		maxRetries:      DefaultMaxRetries,
		retryDelay:      DefaultRetryDelay,
		sleeper:         timerSleeper{},
		limiter:         nil,
		describer:       newDescriber(language.German),
		logger:          log.Logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send performs req and returns the raw response body of the first non rate
// limited response. Rate limited responses (429) are retried after a fixed
// delay until the retry budget is spent. Any status >= 400 yields an *APIError.
func (c *Client) Send(ctx context.Context, req Request, opts ...RequestOption) (json.RawMessage, error) {
	resp, err := c.Execute(ctx, req, opts...)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body), nil
}

// Do sends req and decodes the response body into response. A nil response
// discards the body.
func (c *Client) Do(ctx context.Context, req Request, response any, opts ...RequestOption) error {
	resp, err := c.Execute(ctx, req, opts...)
	if err != nil {
		return err
	}

	if response == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body, response); err != nil {
		return &APIError{
			HTTPCode:    strconv.Itoa(resp.StatusCode),
			Message:     http.StatusText(resp.StatusCode),
			Description: "unexpected response body: " + err.Error(),
			Kind:        KindMalformedResponse,
			RequestID:   resp.RequestID,
		}
	}

	return nil
}

func (c *Client) Get(ctx context.Context, path string, query map[string]any, response any, opts ...RequestOption) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, response, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, response any, opts ...RequestOption) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, response, opts...)
}

// Execute is Send returning the full successful response.
func (c *Client) Execute(ctx context.Context, req Request, opts ...RequestOption) (*Response, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	cfg := buildRequestConfig(opts...)

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	if c.tokenProvider != nil {
		token, err := c.tokenProvider.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
		}

		cfg.headers[HeaderAuthorization] = "Bearer " + token
	}

	payload, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	remainingRetries := c.maxRetries

	for {
		resp, err := c.attempt(ctx, req, payload, cfg)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return c.evaluate(resp)
		}

		if remainingRetries == 0 {
			return nil, &APIError{
				HTTPCode:    strconv.Itoa(resp.StatusCode),
				Message:     http.StatusText(resp.StatusCode),
				Description: descriptionRetriesExhausted,
				Kind:        KindRateLimitExhausted,
				RequestID:   resp.RequestID,
			}
		}

		c.logger.Warn().
			Str("method", req.Method).
			Str("path", req.Path).
			Str("request_id", resp.RequestID).
			Int("remaining_retries", remainingRetries).
			Dur("delay", c.retryDelay).
			Msg("Rate limited, waiting before retry.")

		if err := c.sleeper.Sleep(ctx, c.retryDelay); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}

		remainingRetries--
	}
}

func (c *Client) attempt(ctx context.Context, req Request, payload []byte, cfg *requestConfig) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
	}

	httpReq, err := c.buildRequest(ctx, req, payload, cfg)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := c.readBody(resp.Body)
	if err != nil {
		return nil, err
	}

	respRequestID := resp.Header.Get(HeaderXRequestID)
	if respRequestID == "" {
		respRequestID = cfg.requestID
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Str("request_id", respRequestID).
		Msg("Request completed.")

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    resp.Header,
		Body:       body,
		RequestID:  respRequestID,
	}, nil
}

func (c *Client) evaluate(resp *Response) (*Response, error) {
	if resp.StatusCode < http.StatusBadRequest {
		return resp, nil
	}

	fallback := resp.Status
	if fallback == "" {
		fallback = strconv.Itoa(resp.StatusCode) + " " + http.StatusText(resp.StatusCode)
	}

	description, err := c.describer.describe(fallback, resp.Body)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Int("status", resp.StatusCode).
			Str("request_id", resp.RequestID).
			Msg("Error response body is not in the expected format.")
	}

	return nil, &APIError{
		HTTPCode:    strconv.Itoa(resp.StatusCode),
		Message:     http.StatusText(resp.StatusCode),
		Description: description,
		Kind:        kindForStatus(resp.StatusCode),
		RequestID:   resp.RequestID,
	}
}

func (c *Client) readBody(body io.Reader) ([]byte, error) {
	if c.maxResponseSize > 0 {
		body = io.LimitReader(body, c.maxResponseSize+1)
	}

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	if c.maxResponseSize > 0 && int64(len(bodyBytes)) > c.maxResponseSize {
		return nil, ErrResponseTooLarge
	}

	return bodyBytes, nil
}

func buildRequestConfig(opts ...RequestOption) *requestConfig {
	cfg := &requestConfig{
		headers:   make(map[string]string),
		timeout:   0,
		requestID: "",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.requestID == "" {
		cfg.requestID = uuid.New().String()
	}

	return cfg
}

func encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
	}

	return payload, nil
}

func (c *Client) buildRequest(
	ctx context.Context,
	req Request,
	payload []byte,
	cfg *requestConfig,
) (*http.Request, error) {
	url, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateRequest, err)
	}

	for k, v := range c.defaultHeaders {
		httpReq.Header.Set(k, v)
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	for k, v := range cfg.headers {
		httpReq.Header.Set(k, v)
	}

	if cfg.requestID != "" {
		httpReq.Header.Set(HeaderXRequestID, cfg.requestID)
	}

	return httpReq, nil
}

func (c *Client) buildURL(req Request) (string, error) {
	path := req.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	fullURL := c.baseURL + path

	params, err := req.encodeQuery()
	if err != nil {
		return "", err
	}

	if len(params) == 0 {
		return fullURL, nil
	}

	return fullURL + "?" + params.Encode(), nil
}
