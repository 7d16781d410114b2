package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gojek/heimdall/v7/httpclient"
)

// Client talks to the external payment processor over HTTP. The processor
// owns KYC and the actual money movement; a non-2xx response means the funds
// were not collected and the calling pipeline must abort.
type Client struct {
	http    *httpclient.Client
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		http: httpclient.NewClient(
			httpclient.WithHTTPTimeout(10*time.Second),
			httpclient.WithRetryCount(2),
		),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type collectRequest struct {
	UserID      int64  `json:"user_id"`
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
}

func (c *Client) Collect(ctx context.Context, userID int64, amountCents int64, method string) error {
	body, err := json.Marshal(collectRequest{
		UserID:      userID,
		AmountCents: amountCents,
		Method:      method,
	})
	if err != nil {
		return err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	res, err := c.http.Post(fmt.Sprintf("%s/v1/collections", c.baseURL), bytes.NewReader(body), headers)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("payment processor rejected collection: %s", res.Status)
	}
	return nil
}

// Noop stands in for the processor in development and for manual
// contributions that carry no card movement.
type Noop struct{}

func (Noop) Collect(ctx context.Context, userID int64, amountCents int64, method string) error {
	return nil
}
