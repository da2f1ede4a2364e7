package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"go-storefront/models"
)

const requestTimeout = 10 * time.Second

type contextKey string

const (
	tokenContextKey  = contextKey("token")
	userIDContextKey = contextKey("userID")
)

// WithToken returns a context whose API calls carry the bearer token
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// WithUserID returns a context whose API calls carry the X-User-Id header
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// APIError is a non-2xx response from the backend API
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// AsAPIError unwraps err into an *APIError if it is one
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Client is the shared HTTP client for the backend REST API. Auth
// credentials ride on the request context (WithToken / WithUserID), the
// way the session layer attaches them per request.
type Client struct {
	baseURL string
	http    *http.Client
	log     logrus.FieldLogger
}

// NewClient creates a client for the API at baseURL
func NewClient(baseURL string, log logrus.FieldLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

// do performs a JSON request and decodes the raw response body into out
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}
	return c.send(ctx, method, path, query, "application/json", reader, out)
}

// send performs a request with an already-encoded body and decodes the
// raw response body into out.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errors.Wrapf(err, "build %s %s", method, path)
	}
	req.Header.Set("Content-Type", contentType)
	if token, ok := ctx.Value(tokenContextKey).(string); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if userID, ok := ctx.Value(userIDContextKey).(string); ok && userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.apiError(method, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, path)
	}
	return nil
}

// doData performs a request against an endpoint that wraps its payload in
// the APIResponse envelope and decodes the inner data into out.
func (c *Client) doData(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var envelope models.APIResponse
	if err := c.do(ctx, method, path, query, body, &envelope); err != nil {
		return err
	}
	return decodeData(envelope, out, method, path)
}

// doMultipartData uploads a single file as multipart/form-data and
// decodes the enveloped response payload into out.
func (c *Client) doMultipartData(ctx context.Context, method, path string, fieldName, fileName string, file io.Reader, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return errors.Wrapf(err, "build %s %s body", method, path)
	}
	if _, err := io.Copy(part, file); err != nil {
		return errors.Wrapf(err, "build %s %s body", method, path)
	}
	if err := writer.Close(); err != nil {
		return errors.Wrapf(err, "build %s %s body", method, path)
	}

	var envelope models.APIResponse
	if err := c.send(ctx, method, path, nil, writer.FormDataContentType(), &buf, &envelope); err != nil {
		return err
	}
	return decodeData(envelope, out, method, path)
}

func decodeData(envelope models.APIResponse, out interface{}, method, path string) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return errors.Wrapf(err, "decode %s %s payload", method, path)
	}
	return nil
}

func (c *Client) apiError(method, path string, resp *http.Response) error {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: resp.Status,
	}

	var errResp models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
		apiErr.Code = errResp.Error.Code
		apiErr.Message = errResp.Error.Message
	}

	c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
		"code":   apiErr.Code,
	}).Error("API error")

	return apiErr
}
