package fulfillment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront/internal/models"
)

// HTTPClient implements Client against the fulfillment service's REST API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) FetchCatalogStock(ctx context.Context) ([]models.ProductStock, error) {
	var stocks []models.ProductStock
	if err := c.do(ctx, http.MethodGet, "/api/products/stock", nil, "", &stocks); err != nil {
		return nil, err
	}
	return stocks, nil
}

type submitOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

func (c *HTTPClient) SubmitOrder(ctx context.Context, draft models.OrderDraft, credential string) (string, error) {
	var resp submitOrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/place-order", draft, credential, &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.OrderID == "" {
		return "", &TransientError{Err: errors.New("malformed place-order response")}
	}
	return resp.OrderID, nil
}

func (c *HTTPClient) ListOrders(ctx context.Context, credential string) ([]models.OrderSummary, error) {
	var orders []models.OrderSummary
	if err := c.do(ctx, http.MethodGet, "/api/all-orders", nil, credential, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *HTTPClient) GetOrder(ctx context.Context, orderID, credential string) (*models.OrderDetail, error) {
	var detail models.OrderDetail
	if err := c.do(ctx, http.MethodGet, "/api/order/"+orderID, nil, credential, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *HTTPClient) CancelOrder(ctx context.Context, orderID, credential string) error {
	return c.do(ctx, http.MethodPost, "/api/cancel-order/"+orderID, struct{}{}, credential, nil)
}

// do issues one request and classifies the outcome into the error taxonomy:
// 401 is ErrUnauthorized, 400/404/422 are definitive rejections carrying the
// upstream message, everything else (including transport failures) is
// transient.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, credential string, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransientError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusNotFound,
		resp.StatusCode == http.StatusUnprocessableEntity:
		return &RejectionError{Message: rejectionMessage(resp.Body)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &TransientError{Err: fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransientError{Err: fmt.Errorf("decode %s %s: %w", method, path, err)}
	}
	return nil
}

func rejectionMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil && strings.TrimSpace(payload.Error) != "" {
		return payload.Error
	}
	return "order rejected"
}
