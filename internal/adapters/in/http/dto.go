// Package http provides the inbound HTTP adapter: an echo server exposing the
// truck, package, and manager resources, bearer-token authentication, and
// request metrics. Wire DTOs mirror the JSON contract: snake_case fields,
// `self` links on entities, and `next` links on paginated collections.
package http

import (
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// EntityRef points at a related resource by id and self link.
type EntityRef struct {
	ID   int64  `json:"id"`
	Self string `json:"self"`
}

// TruckResponse is the wire representation of a truck.
type TruckResponse struct {
	ID       int64       `json:"id"`
	Type     string      `json:"type"`
	Length   int         `json:"length"`
	Axles    int         `json:"axles"`
	Packages []EntityRef `json:"packages"`
	Owner    string      `json:"owner"`
	Self     string      `json:"self"`
}

// PackageResponse is the wire representation of a package. Carrier is null
// while the package is unassigned.
type PackageResponse struct {
	ID           int64           `json:"id"`
	ShippingType string          `json:"shipping_type"`
	Weight       decimal.Decimal `json:"weight"`
	ShippingDate types.Date      `json:"shipping_date"`
	Carrier      *EntityRef      `json:"carrier"`
	Self         string          `json:"self"`
}

// ManagerResponse is the wire representation of a truck manager.
type ManagerResponse struct {
	AuthID string `json:"auth_id"`
}

// TrucksPageResponse is one page of trucks. Next is present only when a
// further page exists.
type TrucksPageResponse struct {
	Trucks []TruckResponse `json:"trucks"`
	Next   *string         `json:"next"`
}

// PackagesPageResponse is one page of packages.
type PackagesPageResponse struct {
	Packages []PackageResponse `json:"packages"`
	Next     *string           `json:"next"`
}

// ManagersResponse lists all truck managers.
type ManagersResponse struct {
	Users []ManagerResponse `json:"users"`
}

// TruckRequest carries truck attributes for create (POST), partial update
// (PATCH), and full replace (PUT). Pointer fields distinguish an omitted
// attribute from a supplied zero value.
type TruckRequest struct {
	Type   *string `json:"type"`
	Length *int    `json:"length"`
	Axles  *int    `json:"axles"`
}

// PackageRequest carries package attributes for create, partial update, and
// full replace.
type PackageRequest struct {
	ShippingType *string          `json:"shipping_type"`
	Weight       *decimal.Decimal `json:"weight"`
	ShippingDate *types.Date      `json:"shipping_date"`
}

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Error string `json:"Error"`
}

// AuthErrorResponse is the payload of every 401 response.
type AuthErrorResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
