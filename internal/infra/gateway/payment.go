package gateway

import (
	"context"
	"net/http"

	"checkout-core/internal/pkg/config"
	"checkout-core/internal/pkg/errs"
	"checkout-core/internal/usecase/commands"
)

// PaymentGateway adapts the external payment provider's HTTP API to the
// two-step authorize/capture flow the checkout pipeline drives.
type PaymentGateway struct {
	http httpClient
}

func NewPaymentGateway(cfg config.GatewayConfig) *PaymentGateway {
	return &PaymentGateway{
		http: httpClient{
			base:   cfg.PaymentBaseURL,
			client: &http.Client{Timeout: cfg.Timeout},
		},
	}
}

var _ commands.PaymentGateway = (*PaymentGateway)(nil)

type authorizeRequest struct {
	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`
	Method      string `json:"method"`
	Token       string `json:"token"`
}

type authorizeResponse struct {
	AuthorizationID string `json:"authorizationId"`
}

func (g *PaymentGateway) Authorize(ctx context.Context, amountCents int64, currency string, input commands.PaymentInput) (string, error) {
	var resp authorizeResponse
	err := g.http.postJSON(ctx, "/v1/authorizations", authorizeRequest{
		AmountCents: amountCents,
		Currency:    currency,
		Method:      input.Method,
		Token:       input.Token,
	}, &resp)
	if err != nil {
		return "", errs.Wrap(err, "payment authorization failed")
	}
	return resp.AuthorizationID, nil
}

type captureResponse struct {
	CaptureID string `json:"captureId"`
}

func (g *PaymentGateway) Capture(ctx context.Context, authorizationRef string) (string, error) {
	var resp captureResponse
	err := g.http.postJSON(ctx, "/v1/authorizations/"+authorizationRef+"/capture", struct{}{}, &resp)
	if err != nil {
		return "", errs.Wrap(err, "payment capture failed")
	}
	return resp.CaptureID, nil
}

func (g *PaymentGateway) Void(ctx context.Context, authorizationRef string) error {
	if err := g.http.postJSON(ctx, "/v1/authorizations/"+authorizationRef+"/void", struct{}{}, nil); err != nil {
		return errs.Wrap(err, "payment void failed")
	}
	return nil
}

func (g *PaymentGateway) Refund(ctx context.Context, captureRef string) error {
	if err := g.http.postJSON(ctx, "/v1/captures/"+captureRef+"/refund", struct{}{}, nil); err != nil {
		return errs.Wrap(err, "payment refund failed")
	}
	return nil
}
