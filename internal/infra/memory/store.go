package memory

import (
	"context"
	"sync"

	"coloring-api/internal/domain/device"
	"coloring-api/internal/domain/generation"
	"coloring-api/internal/domain/purchase"
	"coloring-api/internal/domain/redemption"
	"coloring-api/internal/infra"
	"coloring-api/internal/usecase/queries"
	"coloring-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store is a process-local entitlement store. A single mutex serializes every unit of work,
// which gives conditional writes the same single-winner outcome as the row locks in postgres.
type Store struct {
	mu sync.Mutex

	devices       map[string]device.Device
	codes         map[uuid.UUID]redemption.RedemptionCode
	codeIndex     map[redemption.Code]uuid.UUID
	purchases     map[uuid.UUID]purchase.Purchase
	generations   []generation.Record
	paymentEvents map[string]string
}

func New() *Store {
	return &Store{
		devices:       make(map[string]device.Device),
		codes:         make(map[uuid.UUID]redemption.RedemptionCode),
		codeIndex:     make(map[redemption.Code]uuid.UUID),
		purchases:     make(map[uuid.UUID]purchase.Purchase),
		generations:   make([]generation.Record, 0),
		paymentEvents: make(map[string]string),
	}
}

// Within rolls the whole store back to its pre-call state when fn fails.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(ctx, &memTx{s: s})
}

func (s *Store) FindReceiptBySession(_ context.Context, sessionID string) (*queries.PurchaseReceiptView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.purchases {
		if p.StripeSessionID == nil || *p.StripeSessionID != sessionID {
			continue
		}
		var found *redemption.RedemptionCode
		for _, c := range s.codes {
			if c.PurchaseID == nil || *c.PurchaseID != p.ID {
				continue
			}
			if found == nil || c.CreatedAt.Before(found.CreatedAt) {
				cc := c
				found = &cc
			}
		}
		if found == nil {
			break
		}
		return &queries.PurchaseReceiptView{
			PurchaseID:     p.ID,
			PurchaseStatus: p.Status.String(),
			PackType:       string(p.PackType),
			Code:           found.Code.String(),
			Tokens:         found.InitialTokens,
			CodeStatus:     found.Status.String(),
		}, nil
	}
	return nil, infra.NewNotFound("purchase receipt not found")
}

// Generations returns a copy of the audit trail.
func (s *Store) Generations() []generation.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]generation.Record, len(s.generations))
	copy(out, s.generations)
	return out
}

type snapshot struct {
	devices       map[string]device.Device
	codes         map[uuid.UUID]redemption.RedemptionCode
	codeIndex     map[redemption.Code]uuid.UUID
	purchases     map[uuid.UUID]purchase.Purchase
	generations   []generation.Record
	paymentEvents map[string]string
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		devices:       cloneMap(s.devices),
		codes:         cloneMap(s.codes),
		codeIndex:     cloneMap(s.codeIndex),
		purchases:     cloneMap(s.purchases),
		generations:   append([]generation.Record(nil), s.generations...),
		paymentEvents: cloneMap(s.paymentEvents),
	}
}

func (s *Store) restore(snap snapshot) {
	s.devices = snap.devices
	s.codes = snap.codes
	s.codeIndex = snap.codeIndex
	s.purchases = snap.purchases
	s.generations = snap.generations
	s.paymentEvents = snap.paymentEvents
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type memTx struct {
	s *Store
}

func (t *memTx) Devices() shared.DeviceRepository {
	return &deviceRepository{s: t.s}
}

func (t *memTx) Codes() shared.RedemptionCodeRepository {
	return &codeRepository{s: t.s}
}

func (t *memTx) Purchases() shared.PurchaseRepository {
	return &purchaseRepository{s: t.s}
}

func (t *memTx) Generations() shared.GenerationRepository {
	return &generationRepository{s: t.s}
}

func (t *memTx) PaymentEvents() shared.PaymentEventRepository {
	return &paymentEventRepository{s: t.s}
}
