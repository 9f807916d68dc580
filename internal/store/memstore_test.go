package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terratrace-system/internal/models"
)

// fakeClock returns a clock that advances one second per call, so every
// mutation gets a strictly increasing timestamp.
func fakeClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func newTestStore() *MemStore {
	s := NewMemStore()
	s.now = fakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return s
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	s := newTestStore()

	created, err := s.CreateSupplier(models.Supplier{
		Name:      "Acme Farms",
		Products:  []string{"Coffee"},
		Country:   "Brazil",
		Status:    "active",
		RiskLevel: models.RiskLow,
		RiskScore: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.GetSupplier(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetMissReturnsNotFound(t *testing.T) {
	s := newTestStore()

	_, err := s.GetSupplier(42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetDeclaration(1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMergesAndRefreshesTimestamp(t *testing.T) {
	s := newTestStore()

	created, err := s.CreateSupplier(models.Supplier{
		Name: "Acme Farms", Country: "Brazil", RiskLevel: models.RiskLow, RiskScore: 20,
	})
	require.NoError(t, err)

	riskHigh := models.RiskHigh
	updated, err := s.UpdateSupplier(created.ID, models.SupplierUpdate{RiskLevel: &riskHigh})
	require.NoError(t, err)

	assert.Equal(t, models.RiskHigh, updated.RiskLevel)
	assert.Equal(t, "Acme Farms", updated.Name)
	assert.Equal(t, "Brazil", updated.Country)
	assert.Equal(t, 20, updated.RiskScore)
	assert.True(t, updated.LastUpdated.After(created.LastUpdated))
}

func TestSequentialUpdatesMergeBothFields(t *testing.T) {
	s := newTestStore()

	created, err := s.CreateSupplier(models.Supplier{Name: "Acme Farms", Country: "Brazil"})
	require.NoError(t, err)

	country := "Peru"
	_, err = s.UpdateSupplier(created.ID, models.SupplierUpdate{Country: &country})
	require.NoError(t, err)

	score := 55
	_, err = s.UpdateSupplier(created.ID, models.SupplierUpdate{RiskScore: &score})
	require.NoError(t, err)

	got, err := s.GetSupplier(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Peru", got.Country)
	assert.Equal(t, 55, got.RiskScore)
	assert.Equal(t, "Acme Farms", got.Name)
}

func TestUpdateMissingIDMutatesNothing(t *testing.T) {
	s := newTestStore()

	name := "Ghost"
	_, err := s.UpdateSupplier(99, models.SupplierUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	suppliers, err := s.ListSuppliers()
	require.NoError(t, err)
	assert.Empty(t, suppliers)
}

func TestIDsAreNeverReused(t *testing.T) {
	s := newTestStore()

	first, err := s.CreateTask(models.Task{Title: "a", AssignedTo: 1})
	require.NoError(t, err)
	second, err := s.CreateTask(models.Task{Title: "b", AssignedTo: 1})
	require.NoError(t, err)

	assert.Equal(t, first.ID+1, second.ID)

	// Counters are independent per entity type.
	supplier, err := s.CreateSupplier(models.Supplier{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), supplier.ID)
}

func TestReadsReturnCopies(t *testing.T) {
	s := newTestStore()

	created, err := s.CreateSupplier(models.Supplier{
		Name: "Acme Farms", Products: []string{"Coffee"},
	})
	require.NoError(t, err)

	created.Products[0] = "mutated"

	got, err := s.GetSupplier(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Coffee"}, got.Products)
}

func TestReadsDoNotAliasPointerFields(t *testing.T) {
	s := newTestStore()

	due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	task, err := s.CreateTask(models.Task{Title: "renew certificate", AssignedTo: 1, DueDate: &due})
	require.NoError(t, err)

	got, err := s.GetTask(task.ID)
	require.NoError(t, err)
	*got.DueDate = got.DueDate.AddDate(5, 0, 0)

	reread, err := s.GetTask(task.ID)
	require.NoError(t, err)
	require.NotNil(t, reread.DueDate)
	assert.True(t, reread.DueDate.Equal(due))

	filePath := "uploads/cert.pdf"
	doc, err := s.CreateDocument(models.Document{
		Title: "certificate", SupplierID: 1, FilePath: &filePath,
	})
	require.NoError(t, err)
	*doc.FilePath = "mutated"

	gotDoc, err := s.GetDocument(doc.ID)
	require.NoError(t, err)
	require.NotNil(t, gotDoc.FilePath)
	assert.Equal(t, "uploads/cert.pdf", *gotDoc.FilePath)

	customerID := int64(9)
	saq, err := s.CreateSaq(models.Saq{Title: "SAQ", SupplierID: 1, CustomerID: &customerID})
	require.NoError(t, err)
	*saq.CustomerID = 77

	gotSaq, err := s.GetSaq(saq.ID)
	require.NoError(t, err)
	require.NotNil(t, gotSaq.CustomerID)
	assert.Equal(t, int64(9), *gotSaq.CustomerID)

	listed, err := s.ListUpcomingTasks(5)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	*listed[0].DueDate = listed[0].DueDate.AddDate(5, 0, 0)

	reread, err = s.GetTask(task.ID)
	require.NoError(t, err)
	assert.True(t, reread.DueDate.Equal(due))
}

func TestListDeclarationsOrderingAndFiltering(t *testing.T) {
	s := newTestStore()

	supplier, err := s.CreateSupplier(models.Supplier{Name: "Acme Farms"})
	require.NoError(t, err)

	for _, d := range []models.Declaration{
		{Type: models.DeclarationInbound, SupplierID: supplier.ID, ProductName: "Coffee", Status: models.DeclarationPending},
		{Type: models.DeclarationOutbound, SupplierID: supplier.ID, ProductName: "Cocoa", Status: models.DeclarationApproved},
		{Type: models.DeclarationInbound, SupplierID: supplier.ID, ProductName: "Rubber", Status: models.DeclarationReview},
	} {
		_, err := s.CreateDeclaration(d)
		require.NoError(t, err)
	}

	all, err := s.ListDeclarations("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt), "expected non-increasing creation time")
	}
	assert.Equal(t, "Rubber", all[0].ProductName)

	inbound, err := s.ListDeclarations(models.DeclarationInbound)
	require.NoError(t, err)
	require.Len(t, inbound, 2)
	assert.Equal(t, "Rubber", inbound[0].ProductName)
	assert.Equal(t, "Coffee", inbound[1].ProductName)
	for _, d := range inbound {
		assert.Equal(t, models.DeclarationInbound, d.Type)
	}
}

func TestDeclarationStatsIdentities(t *testing.T) {
	s := newTestStore()

	supplier, err := s.CreateSupplier(models.Supplier{Name: "Acme Farms"})
	require.NoError(t, err)

	statuses := []string{
		models.DeclarationPending, models.DeclarationApproved,
		models.DeclarationReview, models.DeclarationRejected,
		models.DeclarationPending,
	}
	types := []string{
		models.DeclarationInbound, models.DeclarationInbound,
		models.DeclarationOutbound, models.DeclarationOutbound,
		models.DeclarationInbound,
	}
	for i := range statuses {
		_, err := s.CreateDeclaration(models.Declaration{
			Type: types[i], SupplierID: supplier.ID, Status: statuses[i],
			Quantity: decimal.NewFromInt(10),
		})
		require.NoError(t, err)
	}

	stats, err := s.GetDeclarationStats()
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, stats.Total, stats.Inbound+stats.Outbound)
	assert.Equal(t, stats.Total, stats.Approved+stats.Pending+stats.Review+stats.Rejected)
	assert.True(t, stats.TotalQuantity.Equal(decimal.NewFromInt(50)))
	assert.True(t, stats.InboundQuantity.Add(stats.OutboundQuantity).Equal(stats.TotalQuantity))
}

func TestDeclarationStatsScenario(t *testing.T) {
	s := newTestStore()

	supplier, err := s.CreateSupplier(models.Supplier{Name: "Acme Farms"})
	require.NoError(t, err)

	_, err = s.CreateDeclaration(models.Declaration{
		Type:       models.DeclarationInbound,
		SupplierID: supplier.ID,
		Status:     models.DeclarationPending,
	})
	require.NoError(t, err)

	stats, err := s.GetDeclarationStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Inbound)
	assert.Equal(t, 0, stats.Outbound)
}

func TestListUpcomingTasks(t *testing.T) {
	s := newTestStore()

	tomorrow := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	nextWeek := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

	_, err := s.CreateTask(models.Task{Title: "undated", AssignedTo: 1})
	require.NoError(t, err)
	_, err = s.CreateTask(models.Task{Title: "next week", AssignedTo: 1, DueDate: &nextWeek})
	require.NoError(t, err)
	_, err = s.CreateTask(models.Task{Title: "tomorrow", AssignedTo: 1, DueDate: &tomorrow})
	require.NoError(t, err)
	done, err := s.CreateTask(models.Task{Title: "done", AssignedTo: 1, DueDate: &tomorrow, Completed: true})
	require.NoError(t, err)

	tasks, err := s.ListUpcomingTasks(10)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "tomorrow", tasks[0].Title)
	assert.Equal(t, "next week", tasks[1].Title)
	assert.Equal(t, "undated", tasks[2].Title)
	for _, task := range tasks {
		assert.NotEqual(t, done.ID, task.ID)
		assert.False(t, task.Completed)
	}

	limited, err := s.ListUpcomingTasks(2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "tomorrow", limited[0].Title)
	assert.Equal(t, "next week", limited[1].Title)
}

func TestUpcomingTasksScenarioDatedBeforeUndated(t *testing.T) {
	s := newTestStore()

	tomorrow := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	_, err := s.CreateTask(models.Task{Title: "dated", AssignedTo: 1, DueDate: &tomorrow})
	require.NoError(t, err)
	_, err = s.CreateTask(models.Task{Title: "undated", AssignedTo: 1})
	require.NoError(t, err)

	tasks, err := s.ListUpcomingTasks(2)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "dated", tasks[0].Title)
	assert.Equal(t, "undated", tasks[1].Title)
}

func TestListRecentActivities(t *testing.T) {
	s := newTestStore()

	for _, activityType := range []string{"first", "second", "third"} {
		_, err := s.CreateActivity(models.Activity{Type: activityType, UserID: 1})
		require.NoError(t, err)
	}

	recent, err := s.ListRecentActivities(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Type)
	assert.Equal(t, "second", recent[1].Type)
}

func TestComplianceHistoryWindowAndOrder(t *testing.T) {
	s := newTestStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, monthsBack := range []int{8, 4, 2, 1} {
		_, err := s.CreateComplianceMetrics(models.ComplianceMetric{
			Date:              base.AddDate(0, -monthsBack, 0),
			OverallCompliance: 80,
		})
		require.NoError(t, err)
	}

	history, err := s.GetComplianceHistory(6)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		assert.True(t, history[i].Date.After(history[i-1].Date))
	}
}

func TestCurrentMetricsIsMostRecent(t *testing.T) {
	s := newTestStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := s.CreateComplianceMetrics(models.ComplianceMetric{Date: base.AddDate(0, -2, 0), OverallCompliance: 70})
	require.NoError(t, err)
	newest, err := s.CreateComplianceMetrics(models.ComplianceMetric{Date: base, OverallCompliance: 85})
	require.NoError(t, err)
	_, err = s.CreateComplianceMetrics(models.ComplianceMetric{Date: base.AddDate(0, -1, 0), OverallCompliance: 78})
	require.NoError(t, err)

	current, err := s.GetCurrentComplianceMetrics()
	require.NoError(t, err)
	assert.Equal(t, newest.ID, current.ID)
	assert.Equal(t, 85, current.OverallCompliance)
}

func TestSaqLifecycle(t *testing.T) {
	s := newTestStore()

	supplier, err := s.CreateSupplier(models.Supplier{Name: "Acme Farms"})
	require.NoError(t, err)

	saq, err := s.CreateSaq(models.Saq{Title: "EUDR SAQ", SupplierID: supplier.ID})
	require.NoError(t, err)
	assert.Equal(t, models.SaqPending, saq.Status)
	assert.Nil(t, saq.CompletedAt)

	inProgress := models.SaqInProgress
	saq, err = s.UpdateSaq(saq.ID, models.SaqUpdate{
		Status:  &inProgress,
		Answers: map[string]interface{}{"q1": "yes"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.SaqInProgress, saq.Status)
	assert.Nil(t, saq.CompletedAt)

	completed := models.SaqCompleted
	score := 88
	saq, err = s.UpdateSaq(saq.ID, models.SaqUpdate{Status: &completed, Score: &score})
	require.NoError(t, err)
	require.NotNil(t, saq.CompletedAt)
	require.NotNil(t, saq.Score)
	assert.Equal(t, 88, *saq.Score)
	assert.Equal(t, map[string]interface{}{"q1": "yes"}, saq.Answers)

	stats, err := s.GetSaqStats()
	require.NoError(t, err)
	assert.Equal(t, models.SaqStats{Total: 1, Completed: 1}, *stats)
}

func TestListSaqsBySupplierOrderAndScope(t *testing.T) {
	s := newTestStore()

	a, err := s.CreateSupplier(models.Supplier{Name: "A"})
	require.NoError(t, err)
	b, err := s.CreateSupplier(models.Supplier{Name: "B"})
	require.NoError(t, err)

	_, err = s.CreateSaq(models.Saq{Title: "first", SupplierID: a.ID})
	require.NoError(t, err)
	_, err = s.CreateSaq(models.Saq{Title: "other", SupplierID: b.ID})
	require.NoError(t, err)
	_, err = s.CreateSaq(models.Saq{Title: "second", SupplierID: a.ID})
	require.NoError(t, err)

	saqs, err := s.ListSaqsBySupplier(a.ID)
	require.NoError(t, err)
	require.Len(t, saqs, 2)
	assert.Equal(t, "second", saqs[0].Title)
	assert.Equal(t, "first", saqs[1].Title)
}

func TestListSaqsByCustomerOrderAndScope(t *testing.T) {
	s := newTestStore()

	supplier, err := s.CreateSupplier(models.Supplier{Name: "A"})
	require.NoError(t, err)

	customer := int64(1)
	other := int64(2)
	_, err = s.CreateSaq(models.Saq{Title: "first", SupplierID: supplier.ID, CustomerID: &customer})
	require.NoError(t, err)
	_, err = s.CreateSaq(models.Saq{Title: "other", SupplierID: supplier.ID, CustomerID: &other})
	require.NoError(t, err)
	_, err = s.CreateSaq(models.Saq{Title: "unlinked", SupplierID: supplier.ID})
	require.NoError(t, err)
	_, err = s.CreateSaq(models.Saq{Title: "second", SupplierID: supplier.ID, CustomerID: &customer})
	require.NoError(t, err)

	saqs, err := s.ListSaqsByCustomer(customer)
	require.NoError(t, err)
	require.Len(t, saqs, 2)
	assert.Equal(t, "second", saqs[0].Title)
	assert.Equal(t, "first", saqs[1].Title)
}

func TestListDeclarationsBySupplierOrderAndScope(t *testing.T) {
	s := newTestStore()

	a, err := s.CreateSupplier(models.Supplier{Name: "A"})
	require.NoError(t, err)
	b, err := s.CreateSupplier(models.Supplier{Name: "B"})
	require.NoError(t, err)

	_, err = s.CreateDeclaration(models.Declaration{Type: models.DeclarationInbound, SupplierID: a.ID, ProductName: "first"})
	require.NoError(t, err)
	_, err = s.CreateDeclaration(models.Declaration{Type: models.DeclarationInbound, SupplierID: b.ID, ProductName: "other"})
	require.NoError(t, err)
	_, err = s.CreateDeclaration(models.Declaration{Type: models.DeclarationOutbound, SupplierID: a.ID, ProductName: "second"})
	require.NoError(t, err)

	declarations, err := s.ListDeclarationsBySupplier(a.ID)
	require.NoError(t, err)
	require.Len(t, declarations, 2)
	assert.Equal(t, "second", declarations[0].ProductName)
	assert.Equal(t, "first", declarations[1].ProductName)
	for _, d := range declarations {
		assert.Equal(t, a.ID, d.SupplierID)
	}
}

func TestCustomerStats(t *testing.T) {
	s := newTestStore()

	for _, c := range []models.Customer{
		{CompanyName: "A", Status: "active", RiskLevel: models.RiskLow, ComplianceScore: 90},
		{CompanyName: "B", Status: "active", RiskLevel: models.RiskHigh, ComplianceScore: 60},
		{CompanyName: "C", Status: "inactive", RiskLevel: models.RiskMedium, ComplianceScore: 75},
	} {
		_, err := s.CreateCustomer(c)
		require.NoError(t, err)
	}

	stats, err := s.GetCustomerStats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.HighRisk)
	assert.InDelta(t, 75.0, stats.AvgComplianceScore, 0.001)
}

func TestEmptyListsAreNotErrors(t *testing.T) {
	s := newTestStore()

	declarations, err := s.ListDeclarations("")
	require.NoError(t, err)
	assert.Empty(t, declarations)

	saqs, err := s.ListSaqsBySupplier(7)
	require.NoError(t, err)
	assert.Empty(t, saqs)

	tasks, err := s.ListUpcomingTasks(5)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSeedPopulatesCollections(t *testing.T) {
	s := newTestStore()
	s.Seed()

	suppliers, err := s.ListSuppliers()
	require.NoError(t, err)
	assert.NotEmpty(t, suppliers)

	categories, err := s.ListRiskCategories()
	require.NoError(t, err)
	assert.Len(t, categories, 4)

	history, err := s.GetComplianceHistory(12)
	require.NoError(t, err)
	assert.Len(t, history, 6)

	stats, err := s.GetDeclarationStats()
	require.NoError(t, err)
	assert.Equal(t, stats.Total, stats.Inbound+stats.Outbound)

	// Seeded data must not break ID assignment for subsequent creates.
	supplier, err := s.CreateSupplier(models.Supplier{Name: "after seed"})
	require.NoError(t, err)
	assert.Greater(t, supplier.ID, suppliers[len(suppliers)-1].ID)
}
