package order

import "log/slog"

// LineItem is a single line of the inbound order.
type LineItem struct {
	SKU            string  `json:"sku"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
	DiscountAmount float64 `json:"discountAmount,omitempty"` // optional; zero means no discount
}

// ShippingAddress is optional on the order as a whole; when present every
// field must be non-empty.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// SourceOrder is the untrusted inbound payload in the producer's native shape.
type SourceOrder struct {
	OrderID         string           `json:"orderId"`
	OrderDate       string           `json:"orderDate"` // MM/DD/YYYY
	CustomerID      string           `json:"customerId"`
	StoreID         int              `json:"storeId"`
	Items           []LineItem       `json:"items"`
	PaymentMethod   string           `json:"paymentMethod"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	TotalAmount     float64          `json:"totalAmount"`
	Status          string           `json:"status"`
	Notes           string           `json:"notes,omitempty"`
}

// LogValue masks PII so any log record carrying a SourceOrder is redacted at
// the logger boundary. customerId and the shipping street are masked.
func (o SourceOrder) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("orderId", o.OrderID),
		slog.String("customerId", mask(o.CustomerID)),
		slog.Int("itemCount", len(o.Items)),
	}
	if o.ShippingAddress != nil {
		attrs = append(attrs, slog.Group("shippingAddress",
			slog.String("street", mask(o.ShippingAddress.Street)),
			slog.String("city", o.ShippingAddress.City),
			slog.String("state", o.ShippingAddress.State),
		))
	}
	return slog.GroupValue(attrs...)
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}
