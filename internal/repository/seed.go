package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/delivery-ops/internal/domain"
)

// SeedFirstFreeID is the first id not taken by SeedSampleData. Allocators
// paired with a seeded store should start here.
const SeedFirstFreeID int64 = 10

// SeedSampleData loads a fixed demo dataset with explicit ids. It bypasses the
// id allocator, so it must run before any Create call.
func SeedSampleData(s *MemoryStore) {
	now := s.now()
	mainBranch := int64(1)
	warehouse := int64(2)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range []domain.Branch{
		{ID: 1, Name: "Shop A (Main)", Address: "Nairobi CBD", Phone: strPtr("+254 700 000 001"), IsActive: true},
		{ID: 2, Name: "Warehouse", Address: "Industrial Area", Phone: strPtr("+254 700 000 002"), IsActive: true},
	} {
		s.branches.put(b.ID, b)
	}

	for _, c := range []domain.Customer{
		{ID: 1, Name: "Sarah Muthoni", Phone: "+254 700 123 456", Email: strPtr("sarah@example.com"), Address: strPtr("Kilimani, Nairobi"), RegisteredAt: now},
		{ID: 2, Name: "Peter Ochieng", Phone: "+254 722 987 654", Email: strPtr("peter@example.com"), Address: strPtr("Westlands, Nairobi"), RegisteredAt: now},
		{ID: 3, Name: "Grace Njeri", Phone: "+254 733 456 789", Email: strPtr("grace@example.com"), Address: strPtr("Karen, Nairobi"), RegisteredAt: now},
		{ID: 4, Name: "David Kiprotich", Phone: "+254 711 234 567", Email: strPtr("david@example.com"), Address: strPtr("Kasarani, Nairobi"), RegisteredAt: now},
	} {
		s.customers.put(c.ID, c)
	}

	for _, a := range []domain.Agent{
		{ID: 1, Name: "John Kamau", Phone: "+254 700 111 001", AgentType: domain.AgentTypeRider, AgentCategory: domain.AgentCategoryInternal,
			Status: domain.AgentStatusBusy, TasksCompleted: 145, Rating: decimal.RequireFromString("4.8"),
			CurrentLat: decPtr("-1.2921"), CurrentLng: decPtr("36.8219"), BranchID: &mainBranch, IsActive: true, CreatedAt: now},
		{ID: 2, Name: "Mary Wanjiku", Phone: "+254 700 111 002", AgentType: domain.AgentTypeCBDWalkIn, AgentCategory: domain.AgentCategoryInternal,
			Status: domain.AgentStatusAvailable, TasksCompleted: 98, Rating: decimal.RequireFromString("4.6"),
			CurrentLat: decPtr("-1.2864"), CurrentLng: decPtr("36.8172"), BranchID: &mainBranch, IsActive: true, CreatedAt: now},
		{ID: 3, Name: "James Mwangi", Phone: "+254 700 111 003", AgentType: domain.AgentTypeRider, AgentCategory: domain.AgentCategoryOutsourced,
			Status: domain.AgentStatusOffline, TasksCompleted: 67, Rating: decimal.RequireFromString("4.3"),
			CurrentLat: decPtr("-1.3031"), CurrentLng: decPtr("36.8441"), BranchID: &warehouse, IsActive: true, CreatedAt: now},
	} {
		s.agents.put(a.ID, a)
	}

	for _, d := range []domain.Delivery{
		{ID: 1, InvoiceNumber: "KIM-001234", CustomerID: 1, AgentID: int64Ptr(1), DeliveryType: domain.DeliveryTypeDoor,
			Status: domain.DeliveryStatusOverdue, Items: []domain.LineItem{{Name: "Chocolate Powder", Quantity: 2, Price: decimal.NewFromInt(800)}},
			TotalAmount: decimal.NewFromInt(1600), PaymentMethod: domain.PaymentMethodCashOnDelivery, PaymentStatus: domain.PaymentStatusPending,
			DeliveryAddress: "Kilimani, Nairobi", EstimatedTime: intPtr(60), BranchID: &mainBranch, CreatedAt: now.Add(-90 * time.Minute)},
		{ID: 2, InvoiceNumber: "ACCRA-005678", CustomerID: 2, AgentID: int64Ptr(2), DeliveryType: domain.DeliveryTypeWalkIn,
			Status: domain.DeliveryStatusActive, Items: []domain.LineItem{{Name: "Vanilla Extract", Quantity: 1, Price: decimal.NewFromInt(350)}},
			TotalAmount: decimal.NewFromInt(350), PaymentMethod: domain.PaymentMethodMobileMoney, PaymentStatus: domain.PaymentStatusPaid,
			DeliveryAddress: "Westlands, Nairobi", EstimatedTime: intPtr(45), BranchID: &mainBranch, CreatedAt: now.Add(-20 * time.Minute)},
		{ID: 3, InvoiceNumber: "KIM-001235", CustomerID: 3, DeliveryType: domain.DeliveryTypeInternal,
			Status: domain.DeliveryStatusPending, Items: []domain.LineItem{{Name: "Baking Flour", Quantity: 1, Price: decimal.NewFromInt(450)}},
			TotalAmount: decimal.NewFromInt(450), PaymentMethod: domain.PaymentMethodCashOnDelivery, PaymentStatus: domain.PaymentStatusPending,
			DeliveryAddress: "Karen, Nairobi", BranchID: &mainBranch, CreatedAt: now.Add(-10 * time.Minute)},
	} {
		s.deliveries.put(d.ID, d)
	}

	for _, m := range []domain.Staff{
		{ID: 1, FullName: "Alice Wanjiru", IDNumber: "12345678", Phone: "+254 700 200 001", Email: strPtr("alice@topserve.com"),
			Role: "Manager", Department: strPtr("Operations"), BranchID: &mainBranch, BasicPay: decPtr("60000"), IsActive: true, HiredAt: now},
		{ID: 2, FullName: "Robert Kipkoech", IDNumber: "87654321", Phone: "+254 700 200 002", Email: strPtr("robert@topserve.com"),
			Role: "Supervisor", Department: strPtr("Delivery"), BranchID: &mainBranch, BasicPay: decPtr("45000"), IsActive: true, HiredAt: now},
	} {
		s.staff.put(m.ID, m)
	}
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}
