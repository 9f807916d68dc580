package models

import "github.com/shopspring/decimal"

// Aggregates computed by a single pass over the live collections. They are
// never cached; every call recomputes from current state.

type DeclarationStats struct {
	Total            int             `json:"total"`
	Inbound          int             `json:"inbound"`
	Outbound         int             `json:"outbound"`
	Approved         int             `json:"approved"`
	Pending          int             `json:"pending"`
	Review           int             `json:"review"`
	Rejected         int             `json:"rejected"`
	TotalQuantity    decimal.Decimal `json:"total_quantity"`
	InboundQuantity  decimal.Decimal `json:"inbound_quantity"`
	OutboundQuantity decimal.Decimal `json:"outbound_quantity"`
}

type SaqStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

type CustomerStats struct {
	Total              int     `json:"total"`
	Active             int     `json:"active"`
	HighRisk           int     `json:"high_risk"`
	AvgComplianceScore float64 `json:"avg_compliance_score"`
}

type SupplierStats struct {
	Total      int `json:"total"`
	LowRisk    int `json:"low_risk"`
	MediumRisk int `json:"medium_risk"`
	HighRisk   int `json:"high_risk"`
}
