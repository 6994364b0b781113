package usecase

import (
	"boarding_house/internal/domain/entities"
	"boarding_house/internal/infrastructure/metrics"
	"boarding_house/internal/usecase/interfaces"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidAccessKey     = errors.New("invalid access key")
	ErrInvalidReading       = errors.New("invalid meter reading")
	ErrReadingDecreased     = errors.New("new meter reading must be greater than or equal to the previous one")
	ErrPriceConfigMissing   = errors.New("no active price config")
	ErrInvalidInvoiceTenant = errors.New("tenant is not a resident of the room")
	ErrInvalidInvoiceMonth  = errors.New("invalid invoice month")
	ErrInvoiceAlreadyPaid   = errors.New("invoice already paid")
)

const (
	accessKeyBytes    = 6
	unknownTenantName = "N/A"
)

// CreateInvoiceInput is the monthly meter reading submitted for a room.
//
// TenantID is optional: when empty the first resident tenant of the room is
// billed. AdditionalFees is a surcharge when positive and a discount when
// negative.
type CreateInvoiceInput struct {
	RoomID         string
	TenantID       string
	Month          string
	NewElectricity float64
	NewWater       float64
	AdditionalFees float64
}

// InvoiceDetails is an invoice with the display names of its room and tenant.
type InvoiceDetails struct {
	Invoice     entities.Invoice
	RoomName    string
	TenantName  string
	TenantPhone string
}

// InvoiceSummaryLine is one invoice inside a RoomPaymentSummary.
type InvoiceSummaryLine struct {
	ID          string
	Month       string
	Status      entities.InvoiceStatus
	TotalAmount float64
	AccessKey   string
}

// RoomPaymentSummary aggregates the invoices of one room for one month.
type RoomPaymentSummary struct {
	RoomID       string
	RoomName     string
	BasePrice    float64
	TenantName   string
	TotalAmount  float64
	PaidAmount   float64
	UnpaidAmount float64
	IsPaid       bool
	Invoices     []InvoiceSummaryLine
}

// IInvoiceUseCase exposes invoice generation and lookup.
//
// CreateInvoice is a single read-modify-write on the store: the invoice is
// persisted first, then the room readings move forward. Two concurrent
// invoices for the same room are not serialized.
type IInvoiceUseCase interface {
	CreateInvoice(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error)
	GetInvoiceByAccessKey(ctx context.Context, accessKey string) (InvoiceDetails, error)
	MarkInvoicePaid(ctx context.Context, id string) (entities.Invoice, error)
	ListRoomInvoices(ctx context.Context, roomID string) ([]InvoiceDetails, error)
	ListInvoicesByMonth(ctx context.Context, month string) ([]InvoiceDetails, error)
	PaymentSummaryByMonth(ctx context.Context, month, year int) ([]RoomPaymentSummary, error)
}

type InvoiceUseCase struct {
	repo       interfaces.IInvoiceRepository
	roomRepo   interfaces.IRoomRepository
	tenantRepo interfaces.ITenantRepository
	configRepo interfaces.IPriceConfigRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, roomRepo interfaces.IRoomRepository, tenantRepo interfaces.ITenantRepository, configRepo interfaces.IPriceConfigRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, roomRepo: roomRepo, tenantRepo: tenantRepo, configRepo: configRepo}
}

func (u *InvoiceUseCase) CreateInvoice(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error) {
	log.Printf("[invoice][usecase] create start room_id=%q month=%q new_elec=%.2f new_water=%.2f additional=%.2f", in.RoomID, in.Month, in.NewElectricity, in.NewWater, in.AdditionalFees)
	inv, err := u.createInvoice(ctx, in)
	if err != nil {
		metrics.ObserveInvoiceCreate(invoiceCreateResult(err), 0)
		log.Printf("[invoice][usecase] create failed room_id=%q err=%v", in.RoomID, err)
		return entities.Invoice{}, err
	}
	metrics.ObserveInvoiceCreate(metrics.ResultSuccess, inv.TotalAmount)
	log.Printf("[invoice][usecase] create success invoice_id=%s room_id=%s tenant_id=%s total=%.2f", inv.ID, inv.RoomID, inv.TenantID, inv.TotalAmount)
	return inv, nil
}

func (u *InvoiceUseCase) createInvoice(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error) {
	roomID := strings.TrimSpace(in.RoomID)
	if roomID == "" {
		return entities.Invoice{}, ErrInvalidRoomID
	}
	month, err := entities.NormalizeBillingMonth(in.Month)
	if err != nil {
		return entities.Invoice{}, ErrInvalidInvoiceMonth
	}
	if in.NewElectricity < 0 || in.NewWater < 0 {
		return entities.Invoice{}, ErrInvalidReading
	}

	room, err := u.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if room.ID == "" {
		return entities.Invoice{}, ErrRoomNotFound
	}

	cfg, err := u.configRepo.GetActive(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}
	if cfg.ID == "" {
		return entities.Invoice{}, ErrPriceConfigMissing
	}

	tenant, err := u.resolveTenant(ctx, room.ID, strings.TrimSpace(in.TenantID))
	if err != nil {
		return entities.Invoice{}, err
	}

	charges, err := entities.CalculateInvoiceCharges(room, cfg, in.NewElectricity, in.NewWater, in.AdditionalFees)
	if err != nil {
		if errors.Is(err, entities.ErrElectricityReadingDecreased) || errors.Is(err, entities.ErrWaterReadingDecreased) {
			log.Printf("[invoice][usecase] reading decreased room_id=%s old_elec=%.2f old_water=%.2f", room.ID, room.LastReadings.Electricity, room.LastReadings.Water)
			return entities.Invoice{}, ErrReadingDecreased
		}
		return entities.Invoice{}, err
	}

	accessKey, err := newAccessKey()
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:                uuid.NewString(),
		RoomID:            room.ID,
		TenantID:          tenant.ID,
		Month:             month,
		Electricity:       charges.Electricity,
		Water:             charges.Water,
		Services:          charges.Services,
		RoomPriceSnapshot: charges.RoomPriceSnapshot,
		AdditionalFees:    charges.AdditionalFees,
		TotalAmount:       charges.TotalAmount,
		Status:            entities.InvoiceStatusUnpaid,
		AccessKey:         accessKey,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}

	readings := entities.MeterReadings{Electricity: created.Electricity.New, Water: created.Water.New}
	if _, err := u.roomRepo.UpdateLastReadings(ctx, room.ID, readings); err != nil {
		log.Printf("[invoice][usecase] room readings update failed room_id=%s invoice_id=%s err=%v", room.ID, created.ID, err)
		return entities.Invoice{}, err
	}
	return created, nil
}

// resolveTenant validates an explicit tenant or picks the first resident.
func (u *InvoiceUseCase) resolveTenant(ctx context.Context, roomID, tenantID string) (entities.Tenant, error) {
	if tenantID != "" {
		t, err := u.tenantRepo.GetByID(ctx, tenantID)
		if err != nil {
			return entities.Tenant{}, err
		}
		if !t.IsResident(roomID) {
			return entities.Tenant{}, ErrInvalidInvoiceTenant
		}
		return t, nil
	}

	tenants, err := u.tenantRepo.ListByRoomID(ctx, roomID)
	if err != nil {
		return entities.Tenant{}, err
	}
	residents := residentTenants(tenants, roomID)
	if len(residents) == 0 {
		return entities.Tenant{}, ErrRoomHasNoResidents
	}
	return residents[0], nil
}

func (u *InvoiceUseCase) GetInvoiceByAccessKey(ctx context.Context, accessKey string) (InvoiceDetails, error) {
	accessKey = strings.TrimSpace(accessKey)
	if accessKey == "" {
		return InvoiceDetails{}, ErrInvalidAccessKey
	}

	inv, err := u.repo.GetByAccessKey(ctx, accessKey)
	if err != nil {
		return InvoiceDetails{}, err
	}
	if inv.ID == "" {
		return InvoiceDetails{}, ErrInvoiceNotFound
	}

	details, err := newDetailsResolver(u.roomRepo, u.tenantRepo).resolve(ctx, []entities.Invoice{inv})
	if err != nil {
		return InvoiceDetails{}, err
	}
	return details[0], nil
}

func (u *InvoiceUseCase) MarkInvoicePaid(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.Status == entities.InvoiceStatusPaid {
		return entities.Invoice{}, ErrInvoiceAlreadyPaid
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.InvoiceStatusPaid, time.Now().UTC())
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	log.Printf("[invoice][usecase] marked paid invoice_id=%s room_id=%s total=%.2f", updated.ID, updated.RoomID, updated.TotalAmount)
	return updated, nil
}

func (u *InvoiceUseCase) ListRoomInvoices(ctx context.Context, roomID string) ([]InvoiceDetails, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return nil, ErrInvalidRoomID
	}

	invoices, err := u.repo.ListByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(invoices)
	return newDetailsResolver(u.roomRepo, u.tenantRepo).resolve(ctx, invoices)
}

func (u *InvoiceUseCase) ListInvoicesByMonth(ctx context.Context, month string) ([]InvoiceDetails, error) {
	key, err := entities.NormalizeBillingMonth(month)
	if err != nil {
		return nil, ErrInvalidInvoiceMonth
	}

	invoices, err := u.repo.ListByMonth(ctx, key)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(invoices)
	return newDetailsResolver(u.roomRepo, u.tenantRepo).resolve(ctx, invoices)
}

// PaymentSummaryByMonth groups the invoices of a month per room. A room is
// paid when every one of its invoices for the month is paid.
func (u *InvoiceUseCase) PaymentSummaryByMonth(ctx context.Context, month, year int) ([]RoomPaymentSummary, error) {
	key, err := entities.BillingMonthKey(month, year)
	if err != nil {
		return nil, ErrInvalidInvoiceMonth
	}

	invoices, err := u.repo.ListByMonth(ctx, key)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(invoices, func(i, j int) bool { return invoices[i].CreatedAt.Before(invoices[j].CreatedAt) })

	resolver := newDetailsResolver(u.roomRepo, u.tenantRepo)
	details, err := resolver.resolve(ctx, invoices)
	if err != nil {
		return nil, err
	}

	byRoom := map[string]*RoomPaymentSummary{}
	order := make([]string, 0)
	for _, d := range details {
		inv := d.Invoice
		s, ok := byRoom[inv.RoomID]
		if !ok {
			room := resolver.rooms[inv.RoomID]
			s = &RoomPaymentSummary{
				RoomID:     inv.RoomID,
				RoomName:   d.RoomName,
				BasePrice:  room.BasePrice,
				TenantName: d.TenantName,
				Invoices:   []InvoiceSummaryLine{},
			}
			byRoom[inv.RoomID] = s
			order = append(order, inv.RoomID)
		}
		s.TotalAmount += inv.TotalAmount
		if inv.Status == entities.InvoiceStatusPaid {
			s.PaidAmount += inv.TotalAmount
		} else {
			s.UnpaidAmount += inv.TotalAmount
		}
		s.Invoices = append(s.Invoices, InvoiceSummaryLine{
			ID:          inv.ID,
			Month:       inv.Month,
			Status:      inv.Status,
			TotalAmount: inv.TotalAmount,
			AccessKey:   inv.AccessKey,
		})
	}

	out := make([]RoomPaymentSummary, 0, len(order))
	for _, roomID := range order {
		s := byRoom[roomID]
		s.IsPaid = true
		for _, line := range s.Invoices {
			if line.Status != entities.InvoiceStatusPaid {
				s.IsPaid = false
				break
			}
		}
		out = append(out, *s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RoomName < out[j].RoomName })
	return out, nil
}

// detailsResolver looks up room and tenant names once per id.
type detailsResolver struct {
	roomRepo   interfaces.IRoomRepository
	tenantRepo interfaces.ITenantRepository
	rooms      map[string]entities.Room
	tenants    map[string]entities.Tenant
}

func newDetailsResolver(roomRepo interfaces.IRoomRepository, tenantRepo interfaces.ITenantRepository) *detailsResolver {
	return &detailsResolver{
		roomRepo:   roomRepo,
		tenantRepo: tenantRepo,
		rooms:      map[string]entities.Room{},
		tenants:    map[string]entities.Tenant{},
	}
}

func (r *detailsResolver) resolve(ctx context.Context, invoices []entities.Invoice) ([]InvoiceDetails, error) {
	out := make([]InvoiceDetails, 0, len(invoices))
	for _, inv := range invoices {
		room, ok := r.rooms[inv.RoomID]
		if !ok {
			var err error
			room, err = r.roomRepo.GetByID(ctx, inv.RoomID)
			if err != nil {
				return nil, err
			}
			r.rooms[inv.RoomID] = room
		}

		tenant, ok := r.tenants[inv.TenantID]
		if !ok && inv.TenantID != "" {
			var err error
			tenant, err = r.tenantRepo.GetByID(ctx, inv.TenantID)
			if err != nil {
				return nil, err
			}
			r.tenants[inv.TenantID] = tenant
		}

		d := InvoiceDetails{Invoice: inv, RoomName: room.Name, TenantName: tenant.FullName, TenantPhone: tenant.Phone}
		if d.TenantName == "" {
			d.TenantName = unknownTenantName
		}
		out = append(out, d)
	}
	return out, nil
}

func sortNewestFirst(invoices []entities.Invoice) {
	sort.SliceStable(invoices, func(i, j int) bool { return invoices[i].CreatedAt.After(invoices[j].CreatedAt) })
}

func newAccessKey() (string, error) {
	b := make([]byte, accessKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func invoiceCreateResult(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRoomID), errors.Is(err, ErrInvalidInvoiceMonth), errors.Is(err, ErrInvalidReading),
		errors.Is(err, ErrRoomNotFound), errors.Is(err, ErrPriceConfigMissing), errors.Is(err, ErrRoomHasNoResidents),
		errors.Is(err, ErrInvalidInvoiceTenant), errors.Is(err, ErrReadingDecreased):
		return metrics.ResultRejected
	default:
		return metrics.ResultError
	}
}
