package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/mail"
)

type mockOrderReader struct {
	findByIDFunc func(ctx context.Context, id uint) (*domain.Order, error)
}

func (m *mockOrderReader) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	return m.findByIDFunc(ctx, id)
}

type mockOrderItemReader struct {
	listFunc func(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

func (m *mockOrderItemReader) ListByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	return m.listFunc(ctx, orderID)
}

type mockServiceItemReader struct {
	listFunc func(ctx context.Context, orderID uint) ([]domain.OrderServiceItem, error)
}

func (m *mockServiceItemReader) ListByOrderID(ctx context.Context, orderID uint) ([]domain.OrderServiceItem, error) {
	return m.listFunc(ctx, orderID)
}

type mockProductReader struct {
	findByIDFunc func(ctx context.Context, id uint) (*domain.Product, error)
}

func (m *mockProductReader) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	return m.findByIDFunc(ctx, id)
}

type mockServiceReader struct {
	findByIDFunc func(ctx context.Context, id uint) (*domain.Service, error)
}

func (m *mockServiceReader) FindByID(ctx context.Context, id uint) (*domain.Service, error) {
	return m.findByIDFunc(ctx, id)
}

type mockMailer struct {
	sendFunc func(ctx context.Context, email mail.Email) error
	sent     []mail.Email
}

func (m *mockMailer) SendEmail(ctx context.Context, email mail.Email) error {
	m.sent = append(m.sent, email)
	if m.sendFunc != nil {
		return m.sendFunc(ctx, email)
	}
	return nil
}

func testOrder() *domain.Order {
	name := "Jane Smith"
	return &domain.Order{
		ID:            42,
		OrderNumber:   "ORD-1700000000000-ABC123",
		CustomerEmail: "jane@example.com",
		CustomerName:  &name,
		Subtotal:      decimal.NewFromFloat(50.00),
		TotalAmount:   decimal.NewFromFloat(50.00),
	}
}

func testOrderItems() []domain.OrderItem {
	return []domain.OrderItem{
		{
			ID:          1,
			OrderID:     42,
			ProductID:   7,
			ProductName: "Ceramic Mug",
			Quantity:    2,
			UnitPrice:   decimal.NewFromFloat(25.00),
			TotalPrice:  decimal.NewFromFloat(50.00),
		},
	}
}

func newTestNotifier(mailer *mockMailer, orders OrderReader, items OrderItemReader, products ProductReader) *Notifier {
	return NewNotifier(
		orders,
		items,
		&mockServiceItemReader{listFunc: func(ctx context.Context, orderID uint) ([]domain.OrderServiceItem, error) {
			return nil, nil
		}},
		products,
		&mockServiceReader{findByIDFunc: func(ctx context.Context, id uint) (*domain.Service, error) {
			return nil, errors.New("not found")
		}},
		mailer,
		config.MailConfig{AdminEmail: "admin@storefront.test", Timeout: 2 * time.Second},
		zap.NewNop(),
	)
}

func TestNotifyOrderCreated_SendsAdminAndCustomerEmails(t *testing.T) {
	mailer := &mockMailer{}
	imageURL := "https://cdn.example.com/mug.jpg"
	notifier := newTestNotifier(
		mailer,
		&mockOrderReader{findByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return testOrder(), nil
		}},
		&mockOrderItemReader{listFunc: func(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
			return testOrderItems(), nil
		}},
		&mockProductReader{findByIDFunc: func(ctx context.Context, id uint) (*domain.Product, error) {
			return &domain.Product{ID: 7, Name: "Ceramic Mug", Slug: "ceramic-mug", ImageURL: &imageURL}, nil
		}},
	)

	notifier.NotifyOrderCreated(42, "ORD-1700000000000-ABC123")

	if len(mailer.sent) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(mailer.sent))
	}

	admin := mailer.sent[0]
	if admin.To != "admin@storefront.test" {
		t.Errorf("expected admin recipient, got %s", admin.To)
	}
	if !strings.Contains(admin.Subject, "ORD-1700000000000-ABC123") {
		t.Errorf("admin subject missing order number: %q", admin.Subject)
	}
	if !strings.Contains(admin.HTMLContent, "Ceramic Mug") {
		t.Error("admin body missing product name")
	}

	customer := mailer.sent[1]
	if customer.To != "jane@example.com" || customer.ToName != "Jane Smith" {
		t.Errorf("unexpected customer recipient: %s / %s", customer.To, customer.ToName)
	}
	if !strings.Contains(customer.HTMLContent, "50") {
		t.Error("customer body missing order total")
	}
}

func TestNotifyOrderCreated_MailerFailureDoesNotPanic(t *testing.T) {
	mailer := &mockMailer{sendFunc: func(ctx context.Context, email mail.Email) error {
		return errors.New("smtp relay down")
	}}
	notifier := newTestNotifier(
		mailer,
		&mockOrderReader{findByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return testOrder(), nil
		}},
		&mockOrderItemReader{listFunc: func(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
			return testOrderItems(), nil
		}},
		&mockProductReader{findByIDFunc: func(ctx context.Context, id uint) (*domain.Product, error) {
			return nil, errors.New("not found")
		}},
	)

	notifier.NotifyOrderCreated(42, "ORD-1700000000000-ABC123")

	// Both sends are still attempted; the admin failure must not stop the
	// customer email.
	if len(mailer.sent) != 2 {
		t.Fatalf("expected 2 attempted emails, got %d", len(mailer.sent))
	}
}

func TestNotifyOrderCreated_OrderLoadFailureSkipsSend(t *testing.T) {
	mailer := &mockMailer{}
	notifier := newTestNotifier(
		mailer,
		&mockOrderReader{findByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return nil, errors.New("connection reset")
		}},
		&mockOrderItemReader{listFunc: func(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
			return nil, nil
		}},
		&mockProductReader{findByIDFunc: func(ctx context.Context, id uint) (*domain.Product, error) {
			return nil, errors.New("not found")
		}},
	)

	notifier.NotifyOrderCreated(42, "ORD-1700000000000-ABC123")

	if len(mailer.sent) != 0 {
		t.Fatalf("expected no emails, got %d", len(mailer.sent))
	}
}

func TestNotifyOrderCreated_EnrichmentFallsBackToSnapshot(t *testing.T) {
	mailer := &mockMailer{}
	notifier := newTestNotifier(
		mailer,
		&mockOrderReader{findByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return testOrder(), nil
		}},
		&mockOrderItemReader{listFunc: func(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
			items := testOrderItems()
			items[0].ProductName = "Ceramic Mug (archived)"
			return items, nil
		}},
		&mockProductReader{findByIDFunc: func(ctx context.Context, id uint) (*domain.Product, error) {
			return nil, errors.New("product deleted")
		}},
	)

	notifier.NotifyOrderCreated(42, "ORD-1700000000000-ABC123")

	if len(mailer.sent) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(mailer.sent))
	}
	if !strings.Contains(mailer.sent[1].HTMLContent, "Ceramic Mug (archived)") {
		t.Error("customer body should carry the snapshot product name")
	}
}
