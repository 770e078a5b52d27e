package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasmatheustesta/fiap-fase4-pedidos/internal/domain/catalog"
	"github.com/lucasmatheustesta/fiap-fase4-pedidos/internal/domain/order"
)

// money renders a decimal as a bare JSON number with two fractional digits.
// shopspring/decimal marshals to a quoted string by default, which would
// break the contract of monetary values being transmitted as numbers.
type money decimal.Decimal

func (m money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(2)), nil
}

type createOrderRequest struct {
	CustomerRef *string             `json:"customer_ref"`
	Lines       []createLineRequest `json:"lines"`
}

type createLineRequest struct {
	ProductRef  int64           `json:"product_ref"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Notes       *string         `json:"notes"`
}

type updateStatusRequest struct {
	Status *string `json:"status"`
}

// syncRequest distinguishes a missing products field (rejected) from an
// empty list (clears the catalog), hence the pointer.
type syncRequest struct {
	Products *[]syncProductRequest `json:"products"`
}

type syncProductRequest struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description"`
	Available   *bool           `json:"available"`
}

type orderResponse struct {
	ID          int64          `json:"id"`
	CustomerRef *string        `json:"customer_ref"`
	Status      string         `json:"status"`
	Total       money          `json:"total"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Lines       []lineResponse `json:"lines"`
}

type lineResponse struct {
	ID          int64   `json:"id"`
	ProductRef  int64   `json:"product_ref"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	UnitPrice   money   `json:"unit_price"`
	Notes       *string `json:"notes"`
	Subtotal    money   `json:"subtotal"`
}

type productResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       money   `json:"price"`
	Description *string `json:"description"`
	Available   bool    `json:"available"`
}

func toOrderResponse(o *order.Order) orderResponse {
	lines := make([]lineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = lineResponse{
			ID:          l.ID,
			ProductRef:  l.ProductRef,
			ProductName: l.ProductName,
			Category:    l.Category,
			Quantity:    l.Quantity,
			UnitPrice:   money(l.UnitPrice),
			Notes:       l.Notes,
			Subtotal:    money(l.Subtotal()),
		}
	}
	return orderResponse{
		ID:          o.ID,
		CustomerRef: o.CustomerRef,
		Status:      o.Status.Label(),
		Total:       money(o.Total),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Lines:       lines,
	}
}

func toOrderResponses(orders []order.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i := range orders {
		out[i] = toOrderResponse(&orders[i])
	}
	return out
}

func toProductResponses(products []catalog.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = productResponse{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Price:       money(p.Price),
			Description: p.Description,
			Available:   p.Available,
		}
	}
	return out
}
