package store

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"terratrace-system/internal/models"
)

// MemStore keeps every collection in a map keyed by ID, with an independent
// monotonic counter per entity type. IDs are never reused. All access goes
// through a single RWMutex; reads hand out copies so callers never alias
// store-owned state.
type MemStore struct {
	mu sync.RWMutex

	users        map[int64]models.User
	suppliers    map[int64]models.Supplier
	customers    map[int64]models.Customer
	declarations map[int64]models.Declaration
	documents    map[int64]models.Document
	activities   map[int64]models.Activity
	tasks        map[int64]models.Task
	riskCats     map[int64]models.RiskCategory
	metrics      map[int64]models.ComplianceMetric
	saqs         map[int64]models.Saq

	userID        int64
	supplierID    int64
	customerID    int64
	declarationID int64
	documentID    int64
	activityID    int64
	taskID        int64
	riskCatID     int64
	metricID      int64
	saqID         int64

	now func() time.Time
}

// NewMemStore returns an empty store. Call Seed to load demo fixtures.
func NewMemStore() *MemStore {
	return &MemStore{
		users:        map[int64]models.User{},
		suppliers:    map[int64]models.Supplier{},
		customers:    map[int64]models.Customer{},
		declarations: map[int64]models.Declaration{},
		documents:    map[int64]models.Document{},
		activities:   map[int64]models.Activity{},
		tasks:        map[int64]models.Task{},
		riskCats:     map[int64]models.RiskCategory{},
		metrics:      map[int64]models.ComplianceMetric{},
		saqs:         map[int64]models.Saq{},
		now:          time.Now,
	}
}

var _ Storage = (*MemStore)(nil)

// --- copy helpers ---

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func copyBlob(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Pointer scalar fields are re-pointed on every copy so a caller can never
// reach store-owned memory through a returned record.

func copyTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyInt64Ptr(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copySupplier(s models.Supplier) models.Supplier {
	s.Products = copyStrings(s.Products)
	return s
}

func copyDeclaration(d models.Declaration) models.Declaration {
	d.CustomerID = copyInt64Ptr(d.CustomerID)
	d.GeojsonData = copyBytes(d.GeojsonData)
	d.StartDate = copyTimePtr(d.StartDate)
	d.EndDate = copyTimePtr(d.EndDate)
	return d
}

func copyDocument(d models.Document) models.Document {
	d.FilePath = copyStringPtr(d.FilePath)
	d.ExpiresAt = copyTimePtr(d.ExpiresAt)
	return d
}

func copyActivity(a models.Activity) models.Activity {
	a.EntityType = copyStringPtr(a.EntityType)
	a.EntityID = copyInt64Ptr(a.EntityID)
	a.Metadata = copyBlob(a.Metadata)
	return a
}

func copyTask(t models.Task) models.Task {
	t.DueDate = copyTimePtr(t.DueDate)
	return t
}

func copySaq(s models.Saq) models.Saq {
	s.CustomerID = copyInt64Ptr(s.CustomerID)
	s.Score = copyIntPtr(s.Score)
	s.Answers = copyBlob(s.Answers)
	s.CompletedAt = copyTimePtr(s.CompletedAt)
	return s
}

// --- Users ---

func (m *MemStore) GetUser(id int64) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m *MemStore) GetUserByUsername(username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemStore) GetUserByEmail(email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemStore) CreateUser(user models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.userID++
	user.ID = m.userID
	user.CreatedAt = m.now()
	m.users[user.ID] = user
	return &user, nil
}

func (m *MemStore) ListUsers() ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- Suppliers ---

func (m *MemStore) GetSupplier(id int64) (*models.Supplier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	supplier, ok := m.suppliers[id]
	if !ok {
		return nil, ErrNotFound
	}
	supplier = copySupplier(supplier)
	return &supplier, nil
}

func (m *MemStore) CreateSupplier(supplier models.Supplier) (*models.Supplier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.supplierID++
	supplier.ID = m.supplierID
	now := m.now()
	supplier.CreatedAt = now
	supplier.LastUpdated = now
	supplier.Products = copyStrings(supplier.Products)
	m.suppliers[supplier.ID] = supplier

	out := copySupplier(supplier)
	return &out, nil
}

func (m *MemStore) UpdateSupplier(id int64, update models.SupplierUpdate) (*models.Supplier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	supplier, ok := m.suppliers[id]
	if !ok {
		return nil, ErrNotFound
	}

	if update.Name != nil {
		supplier.Name = *update.Name
	}
	if update.Products != nil {
		supplier.Products = copyStrings(*update.Products)
	}
	if update.Country != nil {
		supplier.Country = *update.Country
	}
	if update.Category != nil {
		supplier.Category = *update.Category
	}
	if update.Status != nil {
		supplier.Status = *update.Status
	}
	if update.RiskLevel != nil {
		supplier.RiskLevel = *update.RiskLevel
	}
	if update.RiskScore != nil {
		supplier.RiskScore = *update.RiskScore
	}
	supplier.LastUpdated = m.now()
	m.suppliers[id] = supplier

	out := copySupplier(supplier)
	return &out, nil
}

func (m *MemStore) ListSuppliers() ([]models.Supplier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Supplier, 0, len(m.suppliers))
	for _, supplier := range m.suppliers {
		out = append(out, copySupplier(supplier))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) GetSupplierStats() (*models.SupplierStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := models.SupplierStats{}
	for _, supplier := range m.suppliers {
		stats.Total++
		switch supplier.RiskLevel {
		case models.RiskLow:
			stats.LowRisk++
		case models.RiskMedium:
			stats.MediumRisk++
		case models.RiskHigh:
			stats.HighRisk++
		}
	}
	return &stats, nil
}

// --- Customers ---

func (m *MemStore) GetCustomer(id int64) (*models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	customer, ok := m.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &customer, nil
}

func (m *MemStore) CreateCustomer(customer models.Customer) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.customerID++
	customer.ID = m.customerID
	now := m.now()
	customer.CreatedAt = now
	customer.LastUpdated = now
	m.customers[customer.ID] = customer
	return &customer, nil
}

func (m *MemStore) UpdateCustomer(id int64, update models.CustomerUpdate) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	customer, ok := m.customers[id]
	if !ok {
		return nil, ErrNotFound
	}

	if update.CompanyName != nil {
		customer.CompanyName = *update.CompanyName
	}
	if update.ContactPerson != nil {
		customer.ContactPerson = *update.ContactPerson
	}
	if update.Email != nil {
		customer.Email = *update.Email
	}
	if update.Phone != nil {
		customer.Phone = *update.Phone
	}
	if update.BillingAddress != nil {
		customer.BillingAddress = *update.BillingAddress
	}
	if update.ShippingAddress != nil {
		customer.ShippingAddress = *update.ShippingAddress
	}
	if update.RegistrationNumber != nil {
		customer.RegistrationNumber = *update.RegistrationNumber
	}
	if update.ComplianceScore != nil {
		customer.ComplianceScore = *update.ComplianceScore
	}
	if update.RiskLevel != nil {
		customer.RiskLevel = *update.RiskLevel
	}
	if update.Status != nil {
		customer.Status = *update.Status
	}
	customer.LastUpdated = m.now()
	m.customers[id] = customer
	return &customer, nil
}

func (m *MemStore) ListCustomers() ([]models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Customer, 0, len(m.customers))
	for _, customer := range m.customers {
		out = append(out, customer)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) GetCustomerStats() (*models.CustomerStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := models.CustomerStats{}
	scoreSum := 0
	for _, customer := range m.customers {
		stats.Total++
		if customer.Status == "active" {
			stats.Active++
		}
		if customer.RiskLevel == models.RiskHigh {
			stats.HighRisk++
		}
		scoreSum += customer.ComplianceScore
	}
	if stats.Total > 0 {
		stats.AvgComplianceScore = float64(scoreSum) / float64(stats.Total)
	}
	return &stats, nil
}

// --- Declarations ---

func (m *MemStore) GetDeclaration(id int64) (*models.Declaration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	declaration, ok := m.declarations[id]
	if !ok {
		return nil, ErrNotFound
	}
	declaration = copyDeclaration(declaration)
	return &declaration, nil
}

func (m *MemStore) CreateDeclaration(declaration models.Declaration) (*models.Declaration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.declarationID++
	declaration.ID = m.declarationID
	now := m.now()
	declaration.CreatedAt = now
	declaration.LastUpdated = now
	declaration = copyDeclaration(declaration)
	m.declarations[declaration.ID] = declaration

	out := copyDeclaration(declaration)
	return &out, nil
}

func (m *MemStore) UpdateDeclaration(id int64, update models.DeclarationUpdate) (*models.Declaration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	declaration, ok := m.declarations[id]
	if !ok {
		return nil, ErrNotFound
	}

	if update.Type != nil {
		declaration.Type = *update.Type
	}
	if update.SupplierID != nil {
		declaration.SupplierID = *update.SupplierID
	}
	if update.CustomerID != nil {
		customerID := *update.CustomerID
		declaration.CustomerID = &customerID
	}
	if update.ProductName != nil {
		declaration.ProductName = *update.ProductName
	}
	if update.HsnCode != nil {
		declaration.HsnCode = *update.HsnCode
	}
	if update.Quantity != nil {
		declaration.Quantity = *update.Quantity
	}
	if update.Unit != nil {
		declaration.Unit = *update.Unit
	}
	if update.Status != nil {
		declaration.Status = *update.Status
	}
	if update.RiskLevel != nil {
		declaration.RiskLevel = *update.RiskLevel
	}
	if update.GeojsonData != nil {
		declaration.GeojsonData = copyBytes(*update.GeojsonData)
	}
	if update.StartDate != nil {
		startDate := *update.StartDate
		declaration.StartDate = &startDate
	}
	if update.EndDate != nil {
		endDate := *update.EndDate
		declaration.EndDate = &endDate
	}
	declaration.LastUpdated = m.now()
	m.declarations[id] = declaration

	out := copyDeclaration(declaration)
	return &out, nil
}

func (m *MemStore) ListDeclarations(declType string) ([]models.Declaration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Declaration, 0, len(m.declarations))
	for _, declaration := range m.declarations {
		if declType != "" && declaration.Type != declType {
			continue
		}
		out = append(out, copyDeclaration(declaration))
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (m *MemStore) ListDeclarationsBySupplier(supplierID int64) ([]models.Declaration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Declaration
	for _, declaration := range m.declarations {
		if declaration.SupplierID == supplierID {
			out = append(out, copyDeclaration(declaration))
		}
	}
	sortByCreatedDesc(out)
	return out, nil
}

// sortByCreatedDesc orders most recent first, falling back to descending ID
// for records created within the same clock tick.
func sortByCreatedDesc(ds []models.Declaration) {
	sort.Slice(ds, func(i, j int) bool {
		if ds[i].CreatedAt.Equal(ds[j].CreatedAt) {
			return ds[i].ID > ds[j].ID
		}
		return ds[i].CreatedAt.After(ds[j].CreatedAt)
	})
}

func (m *MemStore) GetDeclarationStats() (*models.DeclarationStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := models.DeclarationStats{
		TotalQuantity:    decimal.Zero,
		InboundQuantity:  decimal.Zero,
		OutboundQuantity: decimal.Zero,
	}
	for _, declaration := range m.declarations {
		stats.Total++
		stats.TotalQuantity = stats.TotalQuantity.Add(declaration.Quantity)
		switch declaration.Type {
		case models.DeclarationInbound:
			stats.Inbound++
			stats.InboundQuantity = stats.InboundQuantity.Add(declaration.Quantity)
		case models.DeclarationOutbound:
			stats.Outbound++
			stats.OutboundQuantity = stats.OutboundQuantity.Add(declaration.Quantity)
		}
		switch declaration.Status {
		case models.DeclarationApproved:
			stats.Approved++
		case models.DeclarationPending:
			stats.Pending++
		case models.DeclarationReview:
			stats.Review++
		case models.DeclarationRejected:
			stats.Rejected++
		}
	}
	return &stats, nil
}

// --- Documents ---

func (m *MemStore) GetDocument(id int64) (*models.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	document, ok := m.documents[id]
	if !ok {
		return nil, ErrNotFound
	}
	document = copyDocument(document)
	return &document, nil
}

func (m *MemStore) CreateDocument(document models.Document) (*models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.documentID++
	document.ID = m.documentID
	document.UploadedAt = m.now()
	document = copyDocument(document)
	m.documents[document.ID] = document

	out := copyDocument(document)
	return &out, nil
}

func (m *MemStore) ListDocuments() ([]models.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Document, 0, len(m.documents))
	for _, document := range m.documents {
		out = append(out, copyDocument(document))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) ListDocumentsBySupplier(supplierID int64) ([]models.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Document
	for _, document := range m.documents {
		if document.SupplierID == supplierID {
			out = append(out, copyDocument(document))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- Activities ---

func (m *MemStore) CreateActivity(activity models.Activity) (*models.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.activityID++
	activity.ID = m.activityID
	activity.Timestamp = m.now()
	activity = copyActivity(activity)
	m.activities[activity.ID] = activity

	out := copyActivity(activity)
	return &out, nil
}

func (m *MemStore) ListRecentActivities(limit int) ([]models.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Activity, 0, len(m.activities))
	for _, activity := range m.activities {
		out = append(out, copyActivity(activity))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID > out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- Tasks ---

func (m *MemStore) GetTask(id int64) (*models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	task = copyTask(task)
	return &task, nil
}

func (m *MemStore) CreateTask(task models.Task) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.taskID++
	task.ID = m.taskID
	now := m.now()
	task.CreatedAt = now
	task.LastUpdated = now
	task = copyTask(task)
	m.tasks[task.ID] = task

	out := copyTask(task)
	return &out, nil
}

func (m *MemStore) UpdateTask(id int64, update models.TaskUpdate) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.AssignedTo != nil {
		task.AssignedTo = *update.AssignedTo
	}
	if update.DueDate != nil {
		dueDate := *update.DueDate
		task.DueDate = &dueDate
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}
	task.LastUpdated = m.now()
	m.tasks[id] = task

	out := copyTask(task)
	return &out, nil
}

func (m *MemStore) ListTasks() ([]models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		out = append(out, copyTask(task))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) ListUpcomingTasks(limit int) ([]models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Task
	for _, task := range m.tasks {
		if task.Completed {
			continue
		}
		out = append(out, copyTask(task))
	}
	// Ascending due date; tasks without a due date sort after any dated task.
	sort.Slice(out, func(i, j int) bool {
		switch {
		case out[i].DueDate == nil && out[j].DueDate == nil:
			return out[i].ID < out[j].ID
		case out[i].DueDate == nil:
			return false
		case out[j].DueDate == nil:
			return true
		case out[i].DueDate.Equal(*out[j].DueDate):
			return out[i].ID < out[j].ID
		default:
			return out[i].DueDate.Before(*out[j].DueDate)
		}
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- Risk categories ---

func (m *MemStore) CreateRiskCategory(category models.RiskCategory) (*models.RiskCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.riskCatID++
	category.ID = m.riskCatID
	m.riskCats[category.ID] = category
	return &category, nil
}

func (m *MemStore) ListRiskCategories() ([]models.RiskCategory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.RiskCategory, 0, len(m.riskCats))
	for _, category := range m.riskCats {
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- Compliance metrics ---

func (m *MemStore) CreateComplianceMetrics(metrics models.ComplianceMetric) (*models.ComplianceMetric, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.metricID++
	metrics.ID = m.metricID
	if metrics.Date.IsZero() {
		metrics.Date = m.now()
	}
	m.metrics[metrics.ID] = metrics
	return &metrics, nil
}

// GetCurrentComplianceMetrics returns the most recent entry by date, or
// ErrNotFound when no metrics have been recorded yet.
func (m *MemStore) GetCurrentComplianceMetrics() (*models.ComplianceMetric, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var current *models.ComplianceMetric
	for _, metric := range m.metrics {
		metric := metric
		if current == nil || metric.Date.After(current.Date) {
			current = &metric
		}
	}
	if current == nil {
		return nil, ErrNotFound
	}
	return current, nil
}

func (m *MemStore) GetComplianceHistory(months int) ([]models.ComplianceMetric, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cutoff := m.now().AddDate(0, -months, 0)
	var out []models.ComplianceMetric
	for _, metric := range m.metrics {
		if metric.Date.Before(cutoff) {
			continue
		}
		out = append(out, metric)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// --- SAQs ---

func (m *MemStore) GetSaq(id int64) (*models.Saq, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	saq, ok := m.saqs[id]
	if !ok {
		return nil, ErrNotFound
	}
	saq = copySaq(saq)
	return &saq, nil
}

func (m *MemStore) CreateSaq(saq models.Saq) (*models.Saq, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saqID++
	saq.ID = m.saqID
	now := m.now()
	saq.CreatedAt = now
	saq.UpdatedAt = now
	if saq.Status == "" {
		saq.Status = models.SaqPending
	}
	saq = copySaq(saq)
	m.saqs[saq.ID] = saq

	out := copySaq(saq)
	return &out, nil
}

func (m *MemStore) UpdateSaq(id int64, update models.SaqUpdate) (*models.Saq, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	saq, ok := m.saqs[id]
	if !ok {
		return nil, ErrNotFound
	}

	if update.Title != nil {
		saq.Title = *update.Title
	}
	if update.Description != nil {
		saq.Description = *update.Description
	}
	if update.Status != nil {
		saq.Status = *update.Status
		// First transition into completed stamps the completion time.
		if saq.Status == models.SaqCompleted && saq.CompletedAt == nil {
			completedAt := m.now()
			saq.CompletedAt = &completedAt
		}
	}
	if update.Score != nil {
		score := *update.Score
		saq.Score = &score
	}
	if update.Answers != nil {
		saq.Answers = copyBlob(update.Answers)
	}
	saq.UpdatedAt = m.now()
	m.saqs[id] = saq

	out := copySaq(saq)
	return &out, nil
}

func (m *MemStore) ListSaqs() ([]models.Saq, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Saq, 0, len(m.saqs))
	for _, saq := range m.saqs {
		out = append(out, copySaq(saq))
	}
	sortSaqsByCreatedDesc(out)
	return out, nil
}

func (m *MemStore) ListSaqsBySupplier(supplierID int64) ([]models.Saq, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Saq
	for _, saq := range m.saqs {
		if saq.SupplierID == supplierID {
			out = append(out, copySaq(saq))
		}
	}
	sortSaqsByCreatedDesc(out)
	return out, nil
}

func (m *MemStore) ListSaqsByCustomer(customerID int64) ([]models.Saq, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Saq
	for _, saq := range m.saqs {
		if saq.CustomerID != nil && *saq.CustomerID == customerID {
			out = append(out, copySaq(saq))
		}
	}
	sortSaqsByCreatedDesc(out)
	return out, nil
}

func sortSaqsByCreatedDesc(ss []models.Saq) {
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].CreatedAt.Equal(ss[j].CreatedAt) {
			return ss[i].ID > ss[j].ID
		}
		return ss[i].CreatedAt.After(ss[j].CreatedAt)
	})
}

func (m *MemStore) GetSaqStats() (*models.SaqStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := models.SaqStats{}
	for _, saq := range m.saqs {
		stats.Total++
		switch saq.Status {
		case models.SaqPending:
			stats.Pending++
		case models.SaqInProgress:
			stats.InProgress++
		case models.SaqCompleted:
			stats.Completed++
		}
	}
	return &stats, nil
}
