package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	orderNumberPrefix = "ORD"

	// 12 hex chars is 48 bits of suffix entropy. Many numbers share one
	// millisecond timestamp under load, so the suffix alone must make a
	// same-millisecond collision negligible.
	orderNumberSuffixLen = 12
)

// OrderNumberGenerator produces human-readable order numbers of the form
// ORD-<unix millis>-<12 char suffix>. Uniqueness is statistical; the unique
// index on orders.order_number is the backstop, and the checkout service
// regenerates on a collision.
type OrderNumberGenerator struct{}

func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{}
}

func (g *OrderNumberGenerator) Generate() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:orderNumberSuffixLen])
	return fmt.Sprintf("%s-%d-%s", orderNumberPrefix, time.Now().UnixMilli(), suffix)
}
