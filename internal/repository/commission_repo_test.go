package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"salondesk/internal/database"
	"salondesk/internal/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "repo.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func seedCommissionFixture(t *testing.T, db *gorm.DB) (staff domain.Staff, other domain.Staff, svc domain.Service) {
	t.Helper()
	svc = domain.Service{Name: "Haircut", Price: d("35")}
	if err := db.Create(&svc).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	staff = domain.Staff{FirstName: "Maria", LastName: "Lopez", Email: "maria@test.local", CommissionRate: d("20")}
	other = domain.Staff{FirstName: "James", LastName: "Chen", Email: "james@test.local", CommissionRate: d("15")}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	return staff, other, svc
}

func TestCommissionRepository_BatchUpdateStatus(t *testing.T) {
	db := openTestDB(t)
	staff, _, svc := seedCommissionFixture(t, db)
	repo := NewCommissionRepository(db)
	ctx := context.Background()

	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	var ids []int64
	for i := 0; i < 3; i++ {
		c := domain.Commission{
			StaffID:   staff.ID,
			ServiceID: svc.ID,
			Amount:    d("10"),
			Date:      day,
			Status:    domain.CommissionPending,
		}
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("seed commission: %v", err)
		}
		ids = append(ids, c.ID)
	}

	// Only the listed rows change.
	updated, err := repo.BatchUpdateStatus(ctx, ids[:2], domain.CommissionPaid)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	var paid, pending int64
	db.Model(&domain.Commission{}).Where("status = ?", domain.CommissionPaid).Count(&paid)
	db.Model(&domain.Commission{}).Where("status = ?", domain.CommissionPending).Count(&pending)
	assert.Equal(t, int64(2), paid)
	assert.Equal(t, int64(1), pending)

	updated, err = repo.BatchUpdateStatus(ctx, nil, domain.CommissionPaid)
	assert.NoError(t, err)
	assert.Zero(t, updated)
}

func TestCommissionRepository_Summary(t *testing.T) {
	db := openTestDB(t)
	staff, other, svc := seedCommissionFixture(t, db)
	repo := NewCommissionRepository(db)
	ctx := context.Background()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	inv := domain.Invoice{CustomerName: "Emma", InvoiceDate: from, PaymentMethod: "Cash", Status: domain.InvoicePaid}
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("seed invoice: %v", err)
	}

	rows := []domain.Commission{
		{InvoiceID: &inv.ID, StaffID: staff.ID, ServiceID: svc.ID, Amount: d("20"), Date: from.AddDate(0, 0, 5), Status: domain.CommissionPaid},
		{InvoiceID: &inv.ID, StaffID: staff.ID, ServiceID: svc.ID, Amount: d("16.50"), Date: from.AddDate(0, 0, 10), Status: domain.CommissionPending},
		// Outside the range, must not count.
		{StaffID: staff.ID, ServiceID: svc.ID, Amount: d("99"), Date: from.AddDate(0, -1, 0), Status: domain.CommissionPaid},
		// Another staff member, must not count.
		{StaffID: other.ID, ServiceID: svc.ID, Amount: d("50"), Date: from.AddDate(0, 0, 5), Status: domain.CommissionPaid},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed commission: %v", err)
		}
	}

	s, err := repo.Summary(ctx, staff.ID, from, to)
	assert.NoError(t, err)
	assert.True(t, s.PaidAmount.Equal(d("20")), "paid %s", s.PaidAmount)
	assert.True(t, s.PendingAmount.Equal(d("16.50")), "pending %s", s.PendingAmount)
	assert.Equal(t, int64(1), s.InvoiceCount)

	breakdown, err := repo.ServiceBreakdown(ctx, staff.ID, from, to)
	assert.NoError(t, err)
	if assert.Len(t, breakdown, 1) {
		assert.Equal(t, "Haircut", breakdown[0].ServiceName)
		assert.True(t, breakdown[0].TotalAmount.Equal(d("36.50")), "total %s", breakdown[0].TotalAmount)
		assert.Equal(t, int64(2), breakdown[0].Count)
	}
}

func TestCommissionRepository_StaffTotals(t *testing.T) {
	db := openTestDB(t)
	staff, other, svc := seedCommissionFixture(t, db)
	repo := NewCommissionRepository(db)
	ctx := context.Background()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	rows := []domain.Commission{
		{StaffID: staff.ID, ServiceID: svc.ID, Amount: d("40"), Date: from, Status: domain.CommissionPaid},
		{StaffID: staff.ID, ServiceID: svc.ID, Amount: d("10"), Date: from, Status: domain.CommissionPending},
		{StaffID: other.ID, ServiceID: svc.ID, Amount: d("25"), Date: from, Status: domain.CommissionPaid},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed commission: %v", err)
		}
	}

	totals, err := repo.StaffTotals(ctx, from, to)
	assert.NoError(t, err)
	if assert.Len(t, totals, 2) {
		// Ordered by paid amount, highest first.
		assert.Equal(t, staff.ID, totals[0].StaffID)
		assert.Equal(t, "Maria", totals[0].FirstName)
		assert.True(t, totals[0].PaidAmount.Equal(d("40")))
		assert.True(t, totals[0].PendingAmount.Equal(d("10")))
		assert.Equal(t, other.ID, totals[1].StaffID)
	}

	services, err := repo.ServiceTotals(ctx, from, to, 5)
	assert.NoError(t, err)
	if assert.Len(t, services, 1) {
		assert.True(t, services[0].TotalAmount.Equal(d("75")))
		assert.Equal(t, int64(3), services[0].Count)
	}
}

func TestInvoiceRepository_MarkOverdue(t *testing.T) {
	db := openTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	old := domain.Invoice{CustomerName: "Old", InvoiceDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), PaymentMethod: "Cash", Status: domain.InvoicePending}
	recent := domain.Invoice{CustomerName: "Recent", InvoiceDate: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), PaymentMethod: "Cash", Status: domain.InvoicePending}
	paidOld := domain.Invoice{CustomerName: "Paid", InvoiceDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), PaymentMethod: "Cash", Status: domain.InvoicePaid}
	for _, inv := range []*domain.Invoice{&old, &recent, &paidOld} {
		if err := db.Create(inv).Error; err != nil {
			t.Fatalf("seed invoice: %v", err)
		}
	}

	n, err := repo.MarkOverdue(ctx, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var reloadedOld domain.Invoice
	db.First(&reloadedOld, old.ID)
	assert.Equal(t, domain.InvoiceOverdue, reloadedOld.Status)

	var reloadedRecent domain.Invoice
	db.First(&reloadedRecent, recent.ID)
	assert.Equal(t, domain.InvoicePending, reloadedRecent.Status)

	var reloadedPaid domain.Invoice
	db.First(&reloadedPaid, paidOld.ID)
	assert.Equal(t, domain.InvoicePaid, reloadedPaid.Status)
}
