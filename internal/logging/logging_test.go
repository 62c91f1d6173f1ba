package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/orderpipe/order-producer/internal/order"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"junk":  slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestOrderRecordsAreMasked(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	o := order.SourceOrder{
		OrderID:    "ORD-77",
		CustomerID: "CUST-SECRET",
		Items:      []order.LineItem{{SKU: "A", Quantity: 1, UnitPrice: 2}},
		ShippingAddress: &order.ShippingAddress{
			Street: "1 Private Lane",
			City:   "Columbus",
			State:  "OH",
		},
	}
	logger.Info("received request", "order", o)

	out := buf.String()
	if strings.Contains(out, "CUST-SECRET") {
		t.Fatalf("customerId leaked: %s", out)
	}
	if strings.Contains(out, "1 Private Lane") {
		t.Fatalf("street leaked: %s", out)
	}

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log record is not JSON: %v", err)
	}
	ord, ok := rec["order"].(map[string]any)
	if !ok {
		t.Fatalf("order group missing: %s", out)
	}
	if ord["customerId"] != "***" {
		t.Errorf("customerId = %v, want ***", ord["customerId"])
	}
	if ord["orderId"] != "ORD-77" {
		t.Errorf("orderId = %v", ord["orderId"])
	}
	addr, ok := ord["shippingAddress"].(map[string]any)
	if !ok {
		t.Fatalf("shippingAddress group missing: %s", out)
	}
	if addr["street"] != "***" {
		t.Errorf("street = %v, want ***", addr["street"])
	}
	if addr["city"] != "Columbus" {
		t.Errorf("city = %v", addr["city"])
	}
}
