package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fiscal/registros/internal/domain/registro"
	"github.com/fiscal/registros/internal/infrastructure/logger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Registro mirrors one element of GET /api/registros.
type Registro struct {
	RFC        string `json:"RFC"`
	Nombre     string `json:"NOMBRE"`
	Periodo    string `json:"PERIODO"`
	Aprobacion *bool  `json:"APROBACION"`
}

func (r Registro) record() registro.Registro {
	return registro.Registro{RFC: r.RFC, Nombre: r.Nombre, Periodo: r.Periodo, Aprobacion: r.Aprobacion}
}

// APIError is a non-2xx answer from the registros API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("registros api: %d %s", e.StatusCode, e.Message)
}

// APIClient talks to the registros HTTP API. It never touches the store.
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient creates a client for the API rooted at baseURL.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// List fetches every registration.
func (c *APIClient) List(ctx context.Context) ([]Registro, error) {
	var out []Registro
	if err := c.do(ctx, http.MethodGet, "/api/registros", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Registro{}
	}
	return out, nil
}

// SetApproval posts a decision and returns the API confirmation message.
func (c *APIClient) SetApproval(ctx context.Context, rfc string, approved bool) (string, error) {
	body := map[string]any{"rfc": rfc, "aprobacion": approved}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/registros", body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := logger.GetRequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var body struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body) == nil && body.Error != "" {
			apiErr.Message = body.Error
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
