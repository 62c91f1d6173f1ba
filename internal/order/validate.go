package order

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidStatuses is the accepted set for SourceOrder.Status (exact match).
var ValidStatuses = []string{"NEW", "PROCESSING", "SHIPPED", "DELIVERED", "CANCELLED"}

// month 01-12, day 01-31; calendar correctness beyond digit ranges is not
// checked here, matching the producer contract.
var orderDateRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/(0[1-9]|[12]\d|3[01])/\d{4}$`)

// Validate checks a SourceOrder against the inbound contract and returns
// every violation found as a human-readable sentence, or nil when the order
// is fully acceptable. Each rule is evaluated independently: a missing field
// never suppresses checks on other fields. Validate is pure and never
// panics; it is the only gate before the order is published downstream.
func Validate(o SourceOrder) []string {
	var errs []string

	// required-field presence runs first, independently per field
	if o.OrderID == "" {
		errs = append(errs, "orderId is required")
	}
	if o.OrderDate == "" {
		errs = append(errs, "orderDate is required")
	}
	if o.CustomerID == "" {
		errs = append(errs, "customerId is required")
	}
	if o.StoreID == 0 {
		errs = append(errs, "storeId is required")
	}
	if len(o.Items) == 0 {
		errs = append(errs, "items is required")
	}
	if o.PaymentMethod == "" {
		errs = append(errs, "paymentMethod is required")
	}
	if o.TotalAmount == 0 {
		errs = append(errs, "totalAmount is required")
	}
	if o.Status == "" {
		errs = append(errs, "status is required")
	}

	if o.OrderID != "" && !strings.HasPrefix(o.OrderID, "ORD-") {
		errs = append(errs, `orderId must start with "ORD-"`)
	}

	if o.OrderDate != "" && !orderDateRe.MatchString(o.OrderDate) {
		errs = append(errs, "orderDate must be in MM/DD/YYYY format")
	}

	if o.StoreID < 0 {
		errs = append(errs, "storeId must be a positive number")
	}

	if o.Items != nil && len(o.Items) == 0 {
		errs = append(errs, "items must be a non-empty array")
	}
	for i, item := range o.Items {
		if item.SKU == "" {
			errs = append(errs, fmt.Sprintf("items[%d].sku is required", i))
		}
		if item.Quantity <= 0 {
			errs = append(errs, fmt.Sprintf("items[%d].quantity must be a positive number", i))
		}
		if item.UnitPrice < 0 {
			errs = append(errs, fmt.Sprintf("items[%d].unitPrice must be a non-negative number", i))
		}
		if item.DiscountAmount < 0 {
			errs = append(errs, fmt.Sprintf("items[%d].discountAmount must be a non-negative number", i))
		}
	}

	if o.TotalAmount < 0 {
		errs = append(errs, "totalAmount must be a non-negative number")
	}

	if o.Status != "" && !statusValid(o.Status) {
		errs = append(errs, "status must be one of: "+strings.Join(ValidStatuses, ", "))
	}

	if o.ShippingAddress != nil {
		addr := o.ShippingAddress
		for _, f := range []struct {
			name  string
			value string
		}{
			{"street", addr.Street},
			{"city", addr.City},
			{"state", addr.State},
			{"zipCode", addr.ZipCode},
			{"country", addr.Country},
		} {
			if f.value == "" {
				errs = append(errs, fmt.Sprintf("shippingAddress.%s is required when shippingAddress is provided", f.name))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func statusValid(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}
