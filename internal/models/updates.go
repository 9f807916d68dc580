package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Partial-update structures. A nil field is left untouched by the store;
// a non-nil field replaces the stored value (shallow merge). Binding tags
// keep enum fields inside their value sets at the route layer; the store
// itself does not validate.

type SupplierUpdate struct {
	Name      *string   `json:"name,omitempty"`
	Products  *[]string `json:"products,omitempty"`
	Country   *string   `json:"country,omitempty"`
	Category  *string   `json:"category,omitempty"`
	Status    *string   `json:"status,omitempty"`
	RiskLevel *string   `json:"risk_level,omitempty" binding:"omitempty,oneof=low medium high"`
	RiskScore *int      `json:"risk_score,omitempty"`
}

type CustomerUpdate struct {
	CompanyName        *string  `json:"company_name,omitempty"`
	ContactPerson      *string  `json:"contact_person,omitempty"`
	Email              *string  `json:"email,omitempty"`
	Phone              *string  `json:"phone,omitempty"`
	BillingAddress     *Address `json:"billing_address,omitempty"`
	ShippingAddress    *Address `json:"shipping_address,omitempty"`
	RegistrationNumber *string  `json:"registration_number,omitempty"`
	ComplianceScore    *int     `json:"compliance_score,omitempty"`
	RiskLevel          *string  `json:"risk_level,omitempty" binding:"omitempty,oneof=low medium high"`
	Status             *string  `json:"status,omitempty"`
}

type DeclarationUpdate struct {
	Type        *string          `json:"type,omitempty" binding:"omitempty,oneof=inbound outbound"`
	SupplierID  *int64           `json:"supplier_id,omitempty"`
	CustomerID  *int64           `json:"customer_id,omitempty"`
	ProductName *string          `json:"product_name,omitempty"`
	HsnCode     *string          `json:"hsn_code,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	Status      *string          `json:"status,omitempty" binding:"omitempty,oneof=pending approved review rejected"`
	RiskLevel   *string          `json:"risk_level,omitempty" binding:"omitempty,oneof=low medium high"`
	GeojsonData *json.RawMessage `json:"geojson_data,omitempty"`
	StartDate   *time.Time       `json:"start_date,omitempty"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
}

type TaskUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	AssignedTo  *int64     `json:"assigned_to,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

type SaqUpdate struct {
	Title       *string                `json:"title,omitempty"`
	Description *string                `json:"description,omitempty"`
	Status      *string                `json:"status,omitempty" binding:"omitempty,oneof=pending in-progress completed"`
	Score       *int                   `json:"score,omitempty"`
	Answers     map[string]interface{} `json:"answers,omitempty"`
}
