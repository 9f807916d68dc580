package store

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"golang.org/x/crypto/bcrypt"

	"terratrace-system/internal/models"
)

func int64Ptr(i int64) *int64 { return &i }
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// Seed loads a deterministic set of demo entities with timestamps relative
// to the current time. It is meant for demos and local development; the
// server only calls it when SEED_DEMO_DATA is set.
func (m *MemStore) Seed() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	monthsAgo := func(n int) time.Time { return now.AddDate(0, -n, 0) }
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }
	daysAhead := func(n int) time.Time { return now.AddDate(0, 0, n) }

	demoHash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)

	m.putUser(models.User{
		Username: "demo", Email: "demo@terratrace.example", Password: string(demoHash),
		FullName: "Demo Officer", Role: "compliance_officer", CreatedAt: monthsAgo(6),
	})

	acme := m.putSupplier(models.Supplier{
		Name: "Acme Agro Exports", Products: []string{"Coffee", "Cocoa"},
		Country: "Brazil", Category: "Tier 1", Status: "active",
		RiskLevel: models.RiskLow, RiskScore: 18,
		CreatedAt: monthsAgo(5), LastUpdated: daysAgo(12),
	})
	verde := m.putSupplier(models.Supplier{
		Name: "Verde Timber Ltda", Products: []string{"Timber"},
		Country: "Peru", Category: "Tier 2", Status: "active",
		RiskLevel: models.RiskHigh, RiskScore: 74,
		CreatedAt: monthsAgo(4), LastUpdated: daysAgo(3),
	})
	sahel := m.putSupplier(models.Supplier{
		Name: "Sahel Rubber Co-op", Products: []string{"Natural Rubber"},
		Country: "Ivory Coast", Category: "Tier 1", Status: "pending",
		RiskLevel: models.RiskMedium, RiskScore: 45,
		CreatedAt: monthsAgo(2), LastUpdated: daysAgo(30),
	})

	nordkaffee := m.putCustomer(models.Customer{
		CompanyName: "NordKaffee GmbH", ContactPerson: "J. Weber",
		Email: "compliance@nordkaffee.example", Phone: "+49 40 555 0100",
		BillingAddress: models.Address{
			Street: "Hafenstrasse 12", City: "Hamburg", PostalCode: "20457", Country: "Germany",
		},
		ShippingAddress: models.Address{
			Street: "Lagerweg 3", City: "Hamburg", PostalCode: "21079", Country: "Germany",
		},
		RegistrationNumber: "DE-HRB-99812", ComplianceScore: 88,
		RiskLevel: models.RiskLow, Status: "active",
		CreatedAt: monthsAgo(5), LastUpdated: daysAgo(8),
	})

	geojson := json.RawMessage(`{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[-47.93,-15.78]},"properties":{"plot":"BR-001"}}]}`)

	m.putDeclaration(models.Declaration{
		Type: models.DeclarationInbound, SupplierID: acme,
		ProductName: "Arabica Coffee Beans", HsnCode: "0901.11",
		Quantity: decimal.NewFromInt(120), Unit: "tonnes",
		Status: models.DeclarationApproved, RiskLevel: models.RiskLow,
		GeojsonData: geojson,
		StartDate:   timePtr(monthsAgo(3)), EndDate: timePtr(monthsAgo(2)),
		CreatedBy: 1, CreatedAt: monthsAgo(2), LastUpdated: daysAgo(20),
	})
	m.putDeclaration(models.Declaration{
		Type: models.DeclarationInbound, SupplierID: verde,
		ProductName: "Sawn Tropical Timber", HsnCode: "4407.21",
		Quantity: decimal.NewFromFloat(64.5), Unit: "m3",
		Status: models.DeclarationReview, RiskLevel: models.RiskHigh,
		CreatedBy: 1, CreatedAt: monthsAgo(1), LastUpdated: daysAgo(6),
	})
	m.putDeclaration(models.Declaration{
		Type: models.DeclarationOutbound, SupplierID: acme, CustomerID: int64Ptr(nordkaffee),
		ProductName: "Roasted Coffee", HsnCode: "0901.21",
		Quantity: decimal.NewFromInt(40), Unit: "tonnes",
		Status: models.DeclarationPending, RiskLevel: models.RiskLow,
		CreatedBy: 1, CreatedAt: daysAgo(10), LastUpdated: daysAgo(10),
	})

	m.putDocument(models.Document{
		Title: "Deforestation-free certificate 2025", SupplierID: acme,
		Status: "valid", UploadedBy: 1, DocumentType: "certificate",
		ExpiresAt:  timePtr(daysAhead(200)),
		UploadedAt: monthsAgo(2),
	})
	m.putDocument(models.Document{
		Title: "Harvest permit scan", SupplierID: verde,
		Status: "expiring", UploadedBy: 1, DocumentType: "permit",
		ExpiresAt:  timePtr(daysAhead(21)),
		UploadedAt: monthsAgo(3),
	})

	m.putTask(models.Task{
		Title:       "Review Verde Timber geolocation data",
		Description: "High-risk supplier; verify plot polygons against satellite layer.",
		AssignedTo:  1, DueDate: timePtr(daysAhead(3)),
		Status: "open", Priority: "high",
		CreatedAt: daysAgo(6), LastUpdated: daysAgo(6),
	})
	m.putTask(models.Task{
		Title:       "Chase Sahel Rubber SAQ",
		Description: "Questionnaire sent two weeks ago, no response yet.",
		AssignedTo:  1, DueDate: timePtr(daysAhead(10)),
		Status: "open", Priority: "medium",
		CreatedAt: daysAgo(14), LastUpdated: daysAgo(14),
	})
	m.putTask(models.Task{
		Title:       "Archive Q1 compliance report",
		Description: "Export dashboard metrics and file with the regulator.",
		AssignedTo:  1,
		Status:      "open", Priority: "low",
		CreatedAt: daysAgo(40), LastUpdated: daysAgo(40),
	})

	for _, category := range []models.RiskCategory{
		{Name: "Deforestation", Score: 72, Color: "#dc2626"},
		{Name: "Land Rights", Score: 54, Color: "#f59e0b"},
		{Name: "Labor Practices", Score: 31, Color: "#10b981"},
		{Name: "Traceability", Score: 44, Color: "#3b82f6"},
	} {
		m.putRiskCategory(category)
	}

	for i := 5; i >= 0; i-- {
		m.putMetric(models.ComplianceMetric{
			Date:               monthsAgo(i),
			OverallCompliance:  70 + (5-i)*3,
			DocumentStatus:     65 + (5-i)*4,
			SupplierCompliance: 72 + (5-i)*2,
			RiskLevel:          models.RiskMedium,
			IssuesDetected:     9 - (5 - i),
		})
	}

	m.putSaq(models.Saq{
		Title:       "EUDR supplier self-assessment",
		Description: "Annual due-diligence questionnaire.",
		SupplierID:  acme, Status: models.SaqCompleted,
		Score:   intPtr(91),
		Answers: map[string]interface{}{"q1": "yes", "q2": "yes", "q3": "documented"},
		CreatedAt: monthsAgo(2), UpdatedAt: monthsAgo(1), CompletedAt: timePtr(monthsAgo(1)),
	})
	m.putSaq(models.Saq{
		Title:       "EUDR supplier self-assessment",
		Description: "Annual due-diligence questionnaire.",
		SupplierID:  sahel, Status: models.SaqPending,
		CreatedAt: daysAgo(14), UpdatedAt: daysAgo(14),
	})

	m.putActivity(models.Activity{
		Type: "declaration_submitted", Description: "Outbound declaration for Roasted Coffee submitted",
		UserID: 1, EntityType: strPtr("declaration"), EntityID: int64Ptr(3),
		Timestamp: daysAgo(10),
	})
	m.putActivity(models.Activity{
		Type: "document_uploaded", Description: "Harvest permit scan uploaded for Verde Timber Ltda",
		UserID: 1, EntityType: strPtr("document"), EntityID: int64Ptr(2),
		Timestamp: monthsAgo(3),
	})
}

// The put* helpers insert fixtures with explicit timestamps, bypassing the
// Create* methods so seeded history is not stamped with the current time.
// Callers must hold the write lock.

func (m *MemStore) putUser(user models.User) int64 {
	m.userID++
	user.ID = m.userID
	m.users[user.ID] = user
	return user.ID
}

func (m *MemStore) putSupplier(supplier models.Supplier) int64 {
	m.supplierID++
	supplier.ID = m.supplierID
	m.suppliers[supplier.ID] = supplier
	return supplier.ID
}

func (m *MemStore) putCustomer(customer models.Customer) int64 {
	m.customerID++
	customer.ID = m.customerID
	m.customers[customer.ID] = customer
	return customer.ID
}

func (m *MemStore) putDeclaration(declaration models.Declaration) int64 {
	m.declarationID++
	declaration.ID = m.declarationID
	m.declarations[declaration.ID] = declaration
	return declaration.ID
}

func (m *MemStore) putDocument(document models.Document) int64 {
	m.documentID++
	document.ID = m.documentID
	m.documents[document.ID] = document
	return document.ID
}

func (m *MemStore) putTask(task models.Task) int64 {
	m.taskID++
	task.ID = m.taskID
	m.tasks[task.ID] = task
	return task.ID
}

func (m *MemStore) putRiskCategory(category models.RiskCategory) int64 {
	m.riskCatID++
	category.ID = m.riskCatID
	m.riskCats[category.ID] = category
	return category.ID
}

func (m *MemStore) putMetric(metric models.ComplianceMetric) int64 {
	m.metricID++
	metric.ID = m.metricID
	m.metrics[metric.ID] = metric
	return metric.ID
}

func (m *MemStore) putSaq(saq models.Saq) int64 {
	m.saqID++
	saq.ID = m.saqID
	m.saqs[saq.ID] = saq
	return saq.ID
}

func (m *MemStore) putActivity(activity models.Activity) int64 {
	m.activityID++
	activity.ID = m.activityID
	m.activities[activity.ID] = activity
	return activity.ID
}
