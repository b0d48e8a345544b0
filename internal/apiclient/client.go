// Package apiclient dispatches requests to the rental REST API on behalf of the session:
// it attaches the credential, unwraps the response envelope, follows credential rotation
// and turns failures into typed errors plus a notification.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/rental-console/internal/events"
	"github.com/spec-kit/rental-console/internal/observability"
	"github.com/spec-kit/rental-console/internal/session"
	apperrors "github.com/spec-kit/rental-console/pkg/util/errorutil"
)

const (
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 16 << 20
	requestIDHeader = "X-Request-ID"
)

// Session is the part of the session store the client reads and writes.
type Session interface {
	CurrentCredential() (session.Credential, bool)
	RotateCredential(ctx context.Context, value string) (bool, error)
	Clear(ctx context.Context, reason string) error
}

// Requester sends one request. *Client implements it; gateways depend on it.
type Requester interface {
	Send(ctx context.Context, req Request) (*Result, error)
}

// Request describes one API call. Path is joined to the base URL unless it is absolute.
type Request struct {
	Method string
	Path   string
	Query  any
	Header http.Header
	Body   any
	File   *FilePart
}

// FilePart is a multipart upload sent as the single form field (default "file").
type FilePart struct {
	FieldName   string
	FileName    string
	ContentType string
	Reader      io.Reader
}

// Result is a successful response. Data is the unwrapped payload: the envelope's data
// field when the body is an envelope, the whole body otherwise, nil when absent.
type Result struct {
	Status    int
	Header    http.Header
	Enveloped bool
	Envelope  Envelope
	Data      json.RawMessage
}

// Client is the request dispatcher.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    Session
	publisher  events.Publisher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-call timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithPublisher sets where request failures are reported.
func WithPublisher(p events.Publisher) Option {
	return func(c *Client) {
		if p != nil {
			c.publisher = p
		}
	}
}

// WithMetrics records per-call counters.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a dispatcher for baseURL backed by sess.
func NewClient(baseURL string, sess Session, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		session:   sess,
		publisher: events.Nop(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// BaseURL returns the API root requests are resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// Send performs the call. Identical requests are never coalesced and nothing is retried.
func (c *Client) Send(ctx context.Context, req Request) (*Result, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := c.build(ctx, method, req)
	if err != nil {
		return nil, c.fail(ctx, method, req.Path, 0, apperrors.NewConfigError(err))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.fail(ctx, method, req.Path, 0, apperrors.NewNetworkError(err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, c.fail(ctx, method, req.Path, resp.StatusCode, apperrors.NewNetworkError(err))
	}
	c.metrics.RecordRequest(req.Path, method, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.fail(ctx, method, req.Path, resp.StatusCode, c.statusError(ctx, resp.StatusCode, body))
	}

	result := &Result{Status: resp.StatusCode, Header: resp.Header}
	if env, ok := parseEnvelope(body); ok {
		result.Enveloped = true
		result.Envelope = env
		if env.HasData {
			result.Data = env.Data
		}
	} else if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 {
		result.Data = json.RawMessage(trimmed)
	}

	c.rotate(ctx, resp.Header)

	c.logger.Debug("api call",
		zap.String("method", method),
		zap.String("path", req.Path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", httpReq.Header.Get(requestIDHeader)))
	return result, nil
}

func (c *Client) build(ctx context.Context, method string, req Request) (*http.Request, error) {
	target, err := c.resolve(req.Path)
	if err != nil {
		return nil, err
	}
	if req.Query != nil {
		params, err := EncodeQuery(req.Query)
		if err != nil {
			return nil, err
		}
		existing := target.Query()
		for k, vs := range params {
			for _, v := range vs {
				existing.Add(k, v)
			}
		}
		target.RawQuery = existing.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.File != nil:
		buf, ct, err := encodeMultipart(req.File)
		if err != nil {
			return nil, err
		}
		body, contentType = buf, ct
	case req.Body != nil:
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body, contentType = bytes.NewReader(b), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, err
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	// multipart needs its boundary, so a caller's bare multipart/form-data is replaced
	if contentType != "" && (req.File != nil || httpReq.Header.Get("Content-Type") == "") {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}
	if httpReq.Header.Get(requestIDHeader) == "" {
		httpReq.Header.Set(requestIDHeader, uuid.NewString())
	}
	if cred, ok := c.session.CurrentCredential(); ok && headerValue(httpReq.Header, cred.Name) == "" {
		httpReq.Header.Set(cred.Name, cred.Value)
	}
	return httpReq, nil
}

func (c *Client) resolve(path string) (*url.URL, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return url.Parse(path)
	}
	if c.baseURL == "" {
		return nil, errors.New("api base URL is not configured")
	}
	return url.Parse(c.baseURL + "/" + strings.TrimLeft(path, "/"))
}

func encodeMultipart(part *FilePart) (*bytes.Buffer, string, error) {
	if part.Reader == nil {
		return nil, "", errors.New("upload has no content")
	}
	field := part.FieldName
	if field == "" {
		field = "file"
	}
	name := part.FileName
	if name == "" {
		name = "upload"
	}

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	var (
		w   io.Writer
		err error
	)
	if part.ContentType != "" {
		h := make(textproto.MIMEHeader)
		h["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name=%q; filename=%q`, field, name)}
		h["Content-Type"] = []string{part.ContentType}
		w, err = mw.CreatePart(h)
	} else {
		w, err = mw.CreateFormFile(field, name)
	}
	if err != nil {
		return nil, "", fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := io.Copy(w, part.Reader); err != nil {
		return nil, "", fmt.Errorf("read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("finish multipart body: %w", err)
	}
	return buf, mw.FormDataContentType(), nil
}

// statusError maps an HTTP failure status to the error taxonomy. A 401 also clears the
// session: a rejected credential is never sent again.
func (c *Client) statusError(ctx context.Context, status int, body []byte) *apperrors.DomainError {
	switch {
	case status == http.StatusUnauthorized:
		if err := c.session.Clear(ctx, session.ReasonUnauthorized); err != nil {
			c.logger.Warn("failed to clear rejected session", zap.Error(err))
		}
		return apperrors.NewUnauthorized("")
	case status == http.StatusForbidden:
		return apperrors.NewForbidden("")
	case status == http.StatusNotFound:
		return apperrors.NewNotFound("")
	case status >= 500:
		return apperrors.NewServerError(status)
	default:
		return apperrors.NewRequestFailed(status, serverMessage(body))
	}
}

// rotate adopts a new credential value echoed under the current credential name.
func (c *Client) rotate(ctx context.Context, header http.Header) {
	cred, ok := c.session.CurrentCredential()
	if !ok {
		return
	}
	value := headerValue(header, cred.Name)
	if value == "" {
		return
	}
	changed, err := c.session.RotateCredential(ctx, value)
	if err != nil {
		c.logger.Warn("rotated credential not persisted", zap.Error(err))
	}
	if changed {
		c.logger.Info("credential rotated from response header", zap.String("header", cred.Name))
	}
}

func (c *Client) fail(ctx context.Context, method, path string, status int, derr *apperrors.DomainError) error {
	c.metrics.RecordError(path, method, derr.Code)
	c.logger.Warn("api call failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.String("code", derr.Code),
		zap.Error(derr))
	event := events.New(events.EventRequestFailed, events.RequestFailedPayload{
		Method:  method,
		Path:    path,
		Status:  status,
		Code:    derr.Code,
		Message: derr.Message,
	})
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn("failure notification handler failed", zap.Error(err))
	}
	return derr
}

// headerValue looks a header up case-insensitively, including names Go would not
// canonicalize.
func headerValue(h http.Header, name string) string {
	if v := h.Get(name); v != "" {
		return v
	}
	for k, vs := range h {
		if strings.EqualFold(k, name) && len(vs) > 0 {
			return vs[0]
		}
	}
	return ""
}
