package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           uint
	Email        string
	FirstName    string
	LastName     string
	Phone        *string
	PasswordHash *string
	IsGuest      bool
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Address struct {
	ID           uint
	UserID       uint
	AddressLine1 string
	AddressLine2 *string
	City         string
	State        string
	PostalCode   string
	Country      string
	IsDefault    bool
	CreatedAt    time.Time
}

// SplitDisplayName separates a free-form customer name into first and last
// name, treating everything after the first word as the last name. Empty
// input yields empty strings.
func SplitDisplayName(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
