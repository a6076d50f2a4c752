package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/config"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/errs"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/shared"
)

const maxErrorBody = 512

// Client posts recovery emails to the external email service, which owns
// template rendering and transport.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
	fromName   string
}

func NewClient(cfg config.NotifierConfig) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

func NewClientWithHTTP(cfg config.NotifierConfig, httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		fromName:   cfg.FromName,
	}
}

type sendRequest struct {
	Type         string              `json:"type"`
	To           string              `json:"to"`
	FromName     string              `json:"from_name,omitempty"`
	Subject      string              `json:"subject"`
	Content      string              `json:"content,omitempty"`
	EmailNumber  int                 `json:"email_number"`
	CartID       string              `json:"cart_id"`
	CustomerName *string             `json:"customer_name,omitempty"`
	LineItems    []cart.LineItem     `json:"line_items"`
	TotalCents   int64               `json:"total_cents"`
	Discount     *discountPayload    `json:"discount,omitempty"`
	Owner        ownerPayload        `json:"owner"`
	Organization organizationPayload `json:"organization"`
	RecoveryURL  string              `json:"recovery_url"`
}

type discountPayload struct {
	Code    string `json:"code"`
	Percent *int   `json:"percent,omitempty"`
}

type ownerPayload struct {
	Kind      string     `json:"kind"`
	Name      string     `json:"name"`
	EventDate *time.Time `json:"event_date,omitempty"`
}

type organizationPayload struct {
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	LogoURL *string `json:"logo_url,omitempty"`
}

type sendResponse struct {
	ID        string `json:"id"`
	MessageID string `json:"message_id"`
}

// Send returns ErrNotifierRejected for 4xx answers and ErrNotifierUnavailable
// for transport failures and 5xx answers.
func (c *Client) Send(ctx context.Context, msg shared.Message) (shared.SendResult, error) {
	body, err := json.Marshal(toRequest(msg, c.fromName))
	if err != nil {
		return shared.SendResult{}, errs.Wrap(err, "encode notifier request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return shared.SendResult{}, errs.Wrap(err, "build notifier request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return shared.SendResult{}, errs.Mark(errs.Wrap(err, "call notifier"), errs.ErrNotifierUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return shared.SendResult{}, errs.Mark(errs.Wrap(err, "read notifier response"), errs.ErrNotifierUnavailable)
	}

	switch {
	case resp.StatusCode >= 500:
		return shared.SendResult{}, errs.Mark(
			errs.Newf("notifier returned %d: %s", resp.StatusCode, snippet(raw)), errs.ErrNotifierUnavailable)
	case resp.StatusCode >= 300:
		return shared.SendResult{}, errs.Mark(
			errs.Newf("notifier returned %d: %s", resp.StatusCode, snippet(raw)), errs.ErrNotifierRejected)
	}

	var out sendResponse
	if len(bytes.TrimSpace(raw)) > 0 {
		// a 2xx without a JSON body is still a successful send
		_ = json.Unmarshal(raw, &out)
	}
	if out.MessageID == "" {
		out.MessageID = out.ID
	}
	return shared.SendResult{MessageID: out.MessageID}, nil
}

func toRequest(msg shared.Message, fromName string) sendRequest {
	req := sendRequest{
		Type:         "abandoned_cart",
		To:           msg.To,
		FromName:     fromName,
		Subject:      msg.Subject,
		Content:      msg.Content,
		EmailNumber:  msg.Step,
		CartID:       msg.CartID.String(),
		CustomerName: msg.CustomerName,
		LineItems:    msg.LineItems,
		TotalCents:   msg.TotalCents,
		Owner: ownerPayload{
			Kind:      msg.Owner.Kind,
			Name:      msg.Owner.Name,
			EventDate: msg.Owner.EventDate,
		},
		Organization: organizationPayload{
			Name:    msg.Organization.Name,
			Email:   msg.Organization.Email,
			LogoURL: msg.Organization.LogoURL,
		},
		RecoveryURL: msg.RecoveryURL,
	}
	if req.LineItems == nil {
		req.LineItems = []cart.LineItem{}
	}
	if msg.IncludeDiscount && msg.DiscountCode != nil {
		req.Discount = &discountPayload{Code: *msg.DiscountCode, Percent: msg.DiscountPercent}
	}
	return req
}

func snippet(b []byte) string {
	s := string(bytes.TrimSpace(b))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody]
	}
	return s
}
