// Package store defines the storage contract for the compliance system and
// provides the in-memory implementation used by the server.
package store

import (
	"errors"

	"terratrace-system/internal/models"
)

// ErrNotFound is returned when a lookup or update targets an ID that is not
// present. A miss is a normal result, not a failure.
var ErrNotFound = errors.New("not found")

// Storage is the repository contract. Create methods assign a fresh ID and
// creation timestamps and return the stored record. Update methods merge
// only the non-nil fields of the partial, refresh the modification
// timestamp, and return ErrNotFound without mutating anything when the ID
// is absent. List methods return an empty slice when nothing matches.
// Stats methods recompute from live state on every call.
type Storage interface {
	// Users
	GetUser(id int64) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user models.User) (*models.User, error)
	ListUsers() ([]models.User, error)

	// Suppliers
	GetSupplier(id int64) (*models.Supplier, error)
	CreateSupplier(supplier models.Supplier) (*models.Supplier, error)
	UpdateSupplier(id int64, update models.SupplierUpdate) (*models.Supplier, error)
	ListSuppliers() ([]models.Supplier, error)
	GetSupplierStats() (*models.SupplierStats, error)

	// Customers
	GetCustomer(id int64) (*models.Customer, error)
	CreateCustomer(customer models.Customer) (*models.Customer, error)
	UpdateCustomer(id int64, update models.CustomerUpdate) (*models.Customer, error)
	ListCustomers() ([]models.Customer, error)
	GetCustomerStats() (*models.CustomerStats, error)

	// Declarations. declType filters by "inbound"/"outbound"; empty means all.
	GetDeclaration(id int64) (*models.Declaration, error)
	CreateDeclaration(declaration models.Declaration) (*models.Declaration, error)
	UpdateDeclaration(id int64, update models.DeclarationUpdate) (*models.Declaration, error)
	ListDeclarations(declType string) ([]models.Declaration, error)
	ListDeclarationsBySupplier(supplierID int64) ([]models.Declaration, error)
	GetDeclarationStats() (*models.DeclarationStats, error)

	// Documents
	GetDocument(id int64) (*models.Document, error)
	CreateDocument(document models.Document) (*models.Document, error)
	ListDocuments() ([]models.Document, error)
	ListDocumentsBySupplier(supplierID int64) ([]models.Document, error)

	// Activities (append-only)
	CreateActivity(activity models.Activity) (*models.Activity, error)
	ListRecentActivities(limit int) ([]models.Activity, error)

	// Tasks
	GetTask(id int64) (*models.Task, error)
	CreateTask(task models.Task) (*models.Task, error)
	UpdateTask(id int64, update models.TaskUpdate) (*models.Task, error)
	ListTasks() ([]models.Task, error)
	ListUpcomingTasks(limit int) ([]models.Task, error)

	// Risk categories
	CreateRiskCategory(category models.RiskCategory) (*models.RiskCategory, error)
	ListRiskCategories() ([]models.RiskCategory, error)

	// Compliance metrics
	CreateComplianceMetrics(metrics models.ComplianceMetric) (*models.ComplianceMetric, error)
	GetCurrentComplianceMetrics() (*models.ComplianceMetric, error)
	GetComplianceHistory(months int) ([]models.ComplianceMetric, error)

	// SAQs
	GetSaq(id int64) (*models.Saq, error)
	CreateSaq(saq models.Saq) (*models.Saq, error)
	UpdateSaq(id int64, update models.SaqUpdate) (*models.Saq, error)
	ListSaqs() ([]models.Saq, error)
	ListSaqsBySupplier(supplierID int64) ([]models.Saq, error)
	ListSaqsByCustomer(customerID int64) ([]models.Saq, error)
	GetSaqStats() (*models.SaqStats, error)
}
