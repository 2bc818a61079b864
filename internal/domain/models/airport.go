package models

// Airport is a vertex of the route graph, keyed by code.
type Airport struct {
	ID   string `json:"id" db:"id"`
	Code string `json:"code" db:"code" binding:"required"`
	Name string `json:"name" db:"name" binding:"required"`
	City string `json:"city" db:"city" binding:"required"`
}

// AirportCreate is the accepted body of POST /api/airports.
type AirportCreate struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
	City string `json:"city" binding:"required"`
}
