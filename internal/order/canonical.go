package order

// SourceTag identifies this pipeline in canonical metadata.
const SourceTag = "order_producer"

// CanonicalOrder is the reshaped order in the shared downstream schema.
// It is built once by Transform and never mutated afterwards.
type CanonicalOrder struct {
	Order    CanonicalHeader `json:"order"`
	Items    []CanonicalItem `json:"items"`
	Metadata Metadata        `json:"metadata"`
}

type CanonicalHeader struct {
	ID        string   `json:"id"`
	CreatedAt string   `json:"createdAt"` // YYYY-MM-DD
	Customer  Customer `json:"customer"`
	Location  Location `json:"location"`
	Status    string   `json:"status"`
	Payment   Payment  `json:"payment"`
	Shipping  Shipping `json:"shipping"`
}

type Customer struct {
	ID string `json:"id"`
}

type Location struct {
	StoreID string `json:"storeId"`
}

type Payment struct {
	Method string  `json:"method"`
	Total  float64 `json:"total"`
}

type Shipping struct {
	Address Address `json:"address"`
}

// Address is always fully populated; absent source addresses produce empty
// strings, never nulls.
type Address struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type CanonicalItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     Price  `json:"price"`
}

type Price struct {
	Base     float64 `json:"base"`
	Discount float64 `json:"discount"`
	Final    float64 `json:"final"`
}

type Metadata struct {
	Source      string `json:"source"`
	Notes       string `json:"notes"`
	ProcessedAt string `json:"processedAt"` // RFC 3339 UTC, set at transform time
}
