package service

import (
	"context"
	"database/sql"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
	"storefront/internal/infrastructure/mysql"

	"go.uber.org/zap"
)

const shippingMethodDelivery = "delivery"

type UserRepository interface {
	FindByEmailTx(ctx context.Context, tx *sql.Tx, email string) (*domain.User, error)
	FindByEmailForShareTx(ctx context.Context, tx *sql.Tx, email string) (*domain.User, error)
	InsertGuestTx(ctx context.Context, tx *sql.Tx, user domain.User) (uint, error)
	InsertAddressTx(ctx context.Context, tx *sql.Tx, addr domain.Address) (uint, error)
}

// GuestInput carries the checkout fields the resolver needs.
type GuestInput struct {
	Email          string
	Phone          *string
	DisplayName    *string
	ShippingMethod *string
	// Address is the legacy free-text delivery address. When present on a
	// delivery order for a newly created guest it is materialized as an
	// address row with placeholder locality fields.
	Address *string
}

type GuestResolution struct {
	UserID uint
	// ShippingAddressID is set only when a delivery address was materialized.
	ShippingAddressID *uint
	Created           bool
}

// GuestResolver finds or creates the user record anchoring a guest checkout.
// It always runs inside the order transaction so any failure rolls the whole
// order back.
type GuestResolver struct {
	userRepo UserRepository
	logger   *zap.Logger
}

func NewGuestResolver(userRepo UserRepository, logger *zap.Logger) *GuestResolver {
	return &GuestResolver{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (r *GuestResolver) Resolve(ctx context.Context, tx *sql.Tx, in GuestInput) (*GuestResolution, error) {
	existing, err := r.userRepo.FindByEmailTx(ctx, tx, in.Email)
	if err == nil {
		return &GuestResolution{UserID: existing.ID}, nil
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		return nil, err
	}

	var name string
	if in.DisplayName != nil {
		name = *in.DisplayName
	}
	first, last := domain.SplitDisplayName(name)

	userID, err := r.userRepo.InsertGuestTx(ctx, tx, domain.User{
		Email:     in.Email,
		FirstName: first,
		LastName:  last,
		Phone:     in.Phone,
	})
	if err != nil {
		// A concurrent checkout with the same new email can win the insert.
		// The unique index on users.email turns that race into a duplicate
		// key error; resolve deterministically to the winner's row. The
		// re-read must be a locking read: the winner committed after this
		// transaction's snapshot, so a plain select would not see it.
		if mysql.IsDuplicateEntry(err) {
			winner, lookupErr := r.userRepo.FindByEmailForShareTx(ctx, tx, in.Email)
			if lookupErr != nil {
				return nil, lookupErr
			}
			r.logger.Info("guest creation raced, reusing existing user",
				zap.String("email", in.Email), zap.Uint("userId", winner.ID))
			return &GuestResolution{UserID: winner.ID}, nil
		}
		return nil, err
	}

	resolution := &GuestResolution{UserID: userID, Created: true}

	if r.wantsDeliveryAddress(in) {
		addressID, err := r.userRepo.InsertAddressTx(ctx, tx, domain.Address{
			UserID:       userID,
			AddressLine1: *in.Address,
			City:         "N/A",
			State:        "N/A",
			PostalCode:   "00000",
			Country:      "N/A",
			IsDefault:    true,
		})
		if err != nil {
			return nil, err
		}
		resolution.ShippingAddressID = &addressID
	}

	r.logger.Info("guest user created",
		zap.String("email", in.Email), zap.Uint("userId", userID))

	return resolution, nil
}

func (r *GuestResolver) wantsDeliveryAddress(in GuestInput) bool {
	if in.ShippingMethod == nil || in.Address == nil || *in.Address == "" {
		return false
	}
	return *in.ShippingMethod == shippingMethodDelivery
}
