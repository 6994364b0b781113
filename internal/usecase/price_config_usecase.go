package usecase

import (
	"boarding_house/internal/domain/entities"
	"boarding_house/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPriceConfigNotFound = errors.New("price config not found")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInvalidServiceFee   = errors.New("invalid service fee")
)

// PriceConfigInput is the full price list sent by the admin.
type PriceConfigInput struct {
	ElectricityPrice float64
	WaterPrice       float64
	ServiceFees      []entities.ServiceFee
}

// IPriceConfigUseCase keeps exactly one active price config.

type IPriceConfigUseCase interface {
	UpsertPriceConfig(ctx context.Context, in PriceConfigInput) (entities.PriceConfig, error)
	GetActivePriceConfig(ctx context.Context) (entities.PriceConfig, error)
}

type PriceConfigUseCase struct {
	repo interfaces.IPriceConfigRepository
}

var _ IPriceConfigUseCase = (*PriceConfigUseCase)(nil)

func NewPriceConfigUseCase(repo interfaces.IPriceConfigRepository) *PriceConfigUseCase {
	return &PriceConfigUseCase{repo: repo}
}

// UpsertPriceConfig updates the active config in place, or creates the first
// one. Issued invoices keep their own price snapshots.
func (u *PriceConfigUseCase) UpsertPriceConfig(ctx context.Context, in PriceConfigInput) (entities.PriceConfig, error) {
	if in.ElectricityPrice < 0 || in.WaterPrice < 0 {
		return entities.PriceConfig{}, ErrInvalidPrice
	}
	fees := make([]entities.ServiceFee, 0, len(in.ServiceFees))
	for _, f := range in.ServiceFees {
		name := strings.TrimSpace(f.Name)
		if name == "" || f.Price < 0 {
			return entities.PriceConfig{}, ErrInvalidServiceFee
		}
		fees = append(fees, entities.ServiceFee{Name: name, Price: f.Price})
	}

	active, err := u.repo.GetActive(ctx)
	if err != nil {
		return entities.PriceConfig{}, err
	}

	now := time.Now().UTC()
	if active.ID != "" {
		active.ElectricityPrice = in.ElectricityPrice
		active.WaterPrice = in.WaterPrice
		active.ServiceFees = fees
		active.UpdatedAt = now
		updated, err := u.repo.Update(ctx, active)
		if err != nil {
			return entities.PriceConfig{}, err
		}
		if updated.ID == "" {
			return entities.PriceConfig{}, ErrPriceConfigNotFound
		}
		log.Printf("[config][usecase] updated config_id=%s electricity=%.2f water=%.2f services=%d", updated.ID, updated.ElectricityPrice, updated.WaterPrice, len(updated.ServiceFees))
		return updated, nil
	}

	cfg := entities.PriceConfig{
		ID:               uuid.NewString(),
		ElectricityPrice: in.ElectricityPrice,
		WaterPrice:       in.WaterPrice,
		ServiceFees:      fees,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := u.repo.Create(ctx, cfg)
	if err != nil {
		return entities.PriceConfig{}, err
	}
	log.Printf("[config][usecase] created config_id=%s electricity=%.2f water=%.2f services=%d", created.ID, created.ElectricityPrice, created.WaterPrice, len(created.ServiceFees))
	return created, nil
}

func (u *PriceConfigUseCase) GetActivePriceConfig(ctx context.Context) (entities.PriceConfig, error) {
	cfg, err := u.repo.GetActive(ctx)
	if err != nil {
		return entities.PriceConfig{}, err
	}
	if cfg.ID == "" {
		return entities.PriceConfig{}, ErrPriceConfigNotFound
	}
	return cfg, nil
}
