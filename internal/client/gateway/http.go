package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"inspira/internal/client/models"
	"inspira/internal/logging"
	"inspira/internal/validate"
)

// quotesPath is the collection resource on the remote API.
const quotesPath = "/frases"

// HTTPClient implements Client over the REST API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	log     logging.Logger
}

// NewHTTPClient returns an HTTPClient for the API at baseURL. A trailing
// slash on baseURL is tolerated.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// createPayload is the fixed JSON shape of a create request.
type createPayload struct {
	Frase         string `json:"frase"`
	Titulo        string `json:"titulo"`
	AutorFrase    string `json:"autor_frase"`
	Categoria     string `json:"categoria"`
	CurtidasCount int64  `json:"curtidas_count"`
	UsuarioID     int64  `json:"usuario_id"`
	Artist        string `json:"artist,omitempty"`
}

func (c *HTTPClient) CreateQuote(ctx context.Context, draft models.QuoteDraft) (*models.Quote, error) {
	if ferr := validate.QuoteDraft(draft.Titulo, draft.Frase); ferr != nil {
		return nil, ferr
	}

	payload := createPayload{
		Frase:         draft.Frase,
		Titulo:        draft.Titulo,
		AutorFrase:    draft.AutorFrase,
		Categoria:     draft.Categoria,
		CurtidasCount: 0,
		UsuarioID:     draft.UsuarioID,
		Artist:        draft.Artist,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+quotesPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &ServerError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var quote models.Quote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.log.Info(ctx, "quote created", "id", quote.ID, "titulo", quote.Titulo)
	return &quote, nil
}

func (c *HTTPClient) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+quotesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &ServerError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var quotes []models.Quote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.log.Debug(ctx, "quotes loaded", "count", len(quotes))
	return quotes, nil
}
