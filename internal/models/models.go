// Package models defines the entity records tracked by the compliance
// system. All entities are identified by a store-assigned int64 ID.
package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Declaration types.
const (
	DeclarationInbound  = "inbound"
	DeclarationOutbound = "outbound"
)

// Declaration statuses.
const (
	DeclarationPending  = "pending"
	DeclarationApproved = "approved"
	DeclarationReview   = "review"
	DeclarationRejected = "rejected"
)

// Risk levels, shared by suppliers, customers and declarations.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// SAQ statuses.
const (
	SaqPending    = "pending"
	SaqInProgress = "in-progress"
	SaqCompleted  = "completed"
)

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Supplier struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Products    []string  `json:"products"`
	Country     string    `json:"country"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	RiskLevel   string    `json:"risk_level"`
	RiskScore   int       `json:"risk_score"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}

// Address is a billing or shipping address block on a customer record.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type Customer struct {
	ID                 int64     `json:"id"`
	CompanyName        string    `json:"company_name"`
	ContactPerson      string    `json:"contact_person"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	BillingAddress     Address   `json:"billing_address"`
	ShippingAddress    Address   `json:"shipping_address"`
	RegistrationNumber string    `json:"registration_number"`
	ComplianceScore    int       `json:"compliance_score"`
	RiskLevel          string    `json:"risk_level"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	LastUpdated        time.Time `json:"last_updated"`
}

type Declaration struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	SupplierID  int64           `json:"supplier_id"`
	CustomerID  *int64          `json:"customer_id,omitempty"`
	ProductName string          `json:"product_name"`
	HsnCode     string          `json:"hsn_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Status      string          `json:"status"`
	RiskLevel   string          `json:"risk_level"`
	GeojsonData json.RawMessage `json:"geojson_data,omitempty"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	CreatedBy   int64           `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	LastUpdated time.Time       `json:"last_updated"`
}

type Document struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	SupplierID   int64      `json:"supplier_id"`
	Status       string     `json:"status"`
	UploadedBy   int64      `json:"uploaded_by"`
	DocumentType string     `json:"document_type"`
	FilePath     *string    `json:"file_path,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	UploadedAt   time.Time  `json:"uploaded_at"`
}

// Activity is an append-only audit log entry. EntityType and EntityID
// loosely reference the mutated entity; the link is not enforced.
type Activity struct {
	ID          int64                  `json:"id"`
	Type        string                 `json:"type"`
	Description string                 `json:"description"`
	UserID      int64                  `json:"user_id"`
	EntityType  *string                `json:"entity_type,omitempty"`
	EntityID    *int64                 `json:"entity_id,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
}

type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignedTo  int64      `json:"assigned_to"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	LastUpdated time.Time  `json:"last_updated"`
}

// RiskCategory is static reference data seeded once.
type RiskCategory struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Color string `json:"color"`
}

// ComplianceMetric is one point in the append-only compliance time series.
// The "current" metric is the most recent entry by date.
type ComplianceMetric struct {
	ID                 int64     `json:"id"`
	Date               time.Time `json:"date"`
	OverallCompliance  int       `json:"overall_compliance"`
	DocumentStatus     int       `json:"document_status"`
	SupplierCompliance int       `json:"supplier_compliance"`
	RiskLevel          string    `json:"risk_level"`
	IssuesDetected     int       `json:"issues_detected"`
}

// Saq is a self-assessment questionnaire assigned to a supplier. Answers
// are stored as an opaque blob keyed by question identifier.
type Saq struct {
	ID          int64                  `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	SupplierID  int64                  `json:"supplier_id"`
	CustomerID  *int64                 `json:"customer_id,omitempty"`
	Status      string                 `json:"status"`
	Score       *int                   `json:"score,omitempty"`
	Answers     map[string]interface{} `json:"answers,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
}
