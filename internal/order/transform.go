package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// nowFunc is a seam for tests, same as the store clocks elsewhere.
var nowFunc = time.Now

// Transform maps a validated SourceOrder to the canonical downstream schema.
// It assumes the input already passed Validate and does not re-validate,
// but it fails fast on anything Validate could not have let through rather
// than coerce a wrong value into the canonical record. Pure apart from
// reading the clock for metadata.processedAt.
func Transform(src SourceOrder) (CanonicalOrder, error) {
	createdAt, err := reformatDate(src.OrderDate)
	if err != nil {
		return CanonicalOrder{}, err
	}

	addr := Address{}
	if src.ShippingAddress != nil {
		addr = Address{
			Line1:      src.ShippingAddress.Street,
			City:       src.ShippingAddress.City,
			State:      src.ShippingAddress.State,
			PostalCode: src.ShippingAddress.ZipCode,
			Country:    src.ShippingAddress.Country,
		}
	}

	items := make([]CanonicalItem, 0, len(src.Items))
	for _, it := range src.Items {
		base := it.UnitPrice
		discount := it.DiscountAmount
		items = append(items, CanonicalItem{
			ProductID: it.SKU,
			Quantity:  it.Quantity,
			Price: Price{
				Base:     base,
				Discount: discount,
				Final:    base*float64(it.Quantity) - discount,
			},
		})
	}

	return CanonicalOrder{
		Order: CanonicalHeader{
			ID:        src.OrderID,
			CreatedAt: createdAt,
			Customer:  Customer{ID: src.CustomerID},
			Location:  Location{StoreID: strconv.Itoa(src.StoreID)},
			Status:    strings.ToLower(src.Status),
			Payment: Payment{
				Method: src.PaymentMethod,
				Total:  src.TotalAmount,
			},
			Shipping: Shipping{Address: addr},
		},
		Items: items,
		Metadata: Metadata{
			Source:      SourceTag,
			Notes:       src.Notes,
			ProcessedAt: nowFunc().UTC().Format(time.RFC3339),
		},
	}, nil
}

// reformatDate reassembles MM/DD/YYYY as YYYY-MM-DD. Pure string work: no
// calendar validation (done upstream) and no timezone interpretation.
func reformatDate(d string) (string, error) {
	parts := strings.Split(d, "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("orderDate %q is not MM/DD/YYYY", d)
	}
	return parts[2] + "-" + parts[0] + "-" + parts[1], nil
}
