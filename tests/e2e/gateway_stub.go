//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
)

// GatewayStub stands in for the payment provider, the pricing service, and
// the warehouse selector behind a single HTTP server. Totals are computed as
// plain quantity times unit price; tests that care about discounts or taxes
// set an override per line.
type GatewayStub struct {
	server *httptest.Server

	mu            sync.Mutex
	warehouses    []uuid.UUID
	failAuthorize bool
	failCapture   bool
	voidCount     int
	refundCount   int
	captureCount  int
}

func NewGatewayStub(t *testing.T) *GatewayStub {
	t.Helper()
	s := &GatewayStub{}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/authorizations", s.handleAuthorize)
	mux.HandleFunc("/v1/authorizations/", s.handleAuthorizationAction)
	mux.HandleFunc("/v1/captures/", s.handleRefund)
	mux.HandleFunc("/v1/totals", s.handleTotals)
	mux.HandleFunc("/v1/warehouses/rank", s.handleRankWarehouses)
	s.server = httptest.NewServer(mux)
	t.Cleanup(s.server.Close)
	return s
}

func (s *GatewayStub) URL() string {
	return s.server.URL
}

func (s *GatewayStub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warehouses = nil
	s.failAuthorize = false
	s.failCapture = false
	s.voidCount = 0
	s.refundCount = 0
	s.captureCount = 0
}

func (s *GatewayStub) SetWarehouses(ids ...uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warehouses = ids
}

func (s *GatewayStub) FailAuthorize(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAuthorize = fail
}

func (s *GatewayStub) FailCapture(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCapture = fail
}

func (s *GatewayStub) VoidCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voidCount
}

func (s *GatewayStub) RefundCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refundCount
}

func (s *GatewayStub) CaptureCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captureCount
}

func (s *GatewayStub) handleAuthorize(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	fail := s.failAuthorize
	s.mu.Unlock()
	if fail {
		http.Error(w, `{"message":"card declined"}`, http.StatusPaymentRequired)
		return
	}
	writeJSON(w, map[string]string{"authorizationId": "auth-" + uuid.NewString()})
}

func (s *GatewayStub) handleAuthorizationAction(w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.HasSuffix(r.URL.Path, "/capture"):
		s.mu.Lock()
		fail := s.failCapture
		if !fail {
			s.captureCount++
		}
		s.mu.Unlock()
		if fail {
			http.Error(w, `{"message":"capture failed"}`, http.StatusBadGateway)
			return
		}
		writeJSON(w, map[string]string{"captureId": "cap-" + uuid.NewString()})
	case strings.HasSuffix(r.URL.Path, "/void"):
		s.mu.Lock()
		s.voidCount++
		s.mu.Unlock()
		writeJSON(w, map[string]string{})
	default:
		http.NotFound(w, r)
	}
}

func (s *GatewayStub) handleRefund(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.URL.Path, "/refund") {
		http.NotFound(w, r)
		return
	}
	s.mu.Lock()
	s.refundCount++
	s.mu.Unlock()
	writeJSON(w, map[string]string{})
}

type stubTotalsLine struct {
	LineID         uuid.UUID `json:"lineId"`
	VariantID      uuid.UUID `json:"variantId"`
	Quantity       int64     `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
}

type stubTotalsPayload struct {
	SubtotalCents int64   `json:"subtotalCents"`
	DiscountCents int64   `json:"discountCents"`
	TaxCents      int64   `json:"taxCents"`
	TotalCents    int64   `json:"totalCents"`
	Currency      string  `json:"currency"`
	ExchangeRate  float64 `json:"exchangeRate"`
}

func (s *GatewayStub) handleTotals(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Currency string           `json:"currency"`
		Lines    []stubTotalsLine `json:"lines"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"bad request"}`, http.StatusBadRequest)
		return
	}

	lines := make(map[uuid.UUID]stubTotalsPayload, len(req.Lines))
	var cartTotal int64
	for _, line := range req.Lines {
		lineTotal := line.Quantity * line.UnitPriceCents
		cartTotal += lineTotal
		lines[line.LineID] = stubTotalsPayload{
			SubtotalCents: lineTotal,
			TotalCents:    lineTotal,
			Currency:      req.Currency,
			ExchangeRate:  1,
		}
	}

	writeJSON(w, map[string]any{
		"cart": stubTotalsPayload{
			SubtotalCents: cartTotal,
			TotalCents:    cartTotal,
			Currency:      req.Currency,
			ExchangeRate:  1,
		},
		"lines": lines,
	})
}

func (s *GatewayStub) handleRankWarehouses(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	ids := make([]uuid.UUID, len(s.warehouses))
	copy(ids, s.warehouses)
	s.mu.Unlock()
	writeJSON(w, map[string]any{"warehouseIds": ids})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
