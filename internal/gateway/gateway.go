// Package gateway wraps the publication REST API. Every operation is a
// single round trip; the gateway holds no state beyond the base URL and
// the underlying HTTP client.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Publication is the record exchanged with the backend. The id is opaque
// and server-assigned; an empty id means the record has never been
// persisted. The publicado flag is owned by the server.
type Publication struct {
	ID             string `json:"id,omitempty"`
	Titulo         string `json:"titulo"`
	Autor          string `json:"autor"`
	DataPublicacao string `json:"dataPublicacao"`
	Texto          string `json:"texto"`
	Publicado      bool   `json:"publicado"`
}

// StatusError is a non-2xx response. Body carries the server's plain-text
// error message and is surfaced to the user verbatim.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return http.StatusText(e.Code)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// Client talks to the publication API rooted at a fixed base path.
type Client struct {
	base string
	http *http.Client
}

// New returns a client for the API at baseURL, e.g.
// "http://localhost:8080/api/publicacoes".
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// ListPublications fetches the full ordered collection. An empty
// collection is a valid result, not an error.
func (c *Client) ListPublications(ctx context.Context) ([]Publication, error) {
	var out []Publication
	if err := c.do(ctx, http.MethodGet, "/listar", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPublication fetches a single record by id.
func (c *Client) GetPublication(ctx context.Context, id string) (Publication, error) {
	var out Publication
	if err := c.do(ctx, http.MethodGet, "/buscar/"+url.PathEscape(id), nil, &out); err != nil {
		return Publication{}, err
	}
	return out, nil
}

// CreatePublication persists a new record and returns it with the
// server-assigned id.
func (c *Client) CreatePublication(ctx context.Context, p Publication) (Publication, error) {
	p.ID = ""
	var out Publication
	if err := c.do(ctx, http.MethodPost, "/postar", &p, &out); err != nil {
		return Publication{}, err
	}
	return out, nil
}

// UpdatePublication replaces the record with the given id. The full record
// is transmitted; there is no partial-update diffing.
func (c *Client) UpdatePublication(ctx context.Context, id string, p Publication) (Publication, error) {
	var out Publication
	if err := c.do(ctx, http.MethodPut, "/atualizar/"+url.PathEscape(id), &p, &out); err != nil {
		return Publication{}, err
	}
	return out, nil
}

// DeletePublication removes the record with the given id.
func (c *Client) DeletePublication(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/excluir/"+url.PathEscape(id), nil, nil)
}

// ListAuthors fetches the author roster.
func (c *Client) ListAuthors(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/autores", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
