package memory

import (
	"context"
	"sort"
	"time"

	"coloring-api/internal/domain/device"
	"coloring-api/internal/domain/generation"
	"coloring-api/internal/domain/purchase"
	"coloring-api/internal/domain/redemption"
	"coloring-api/internal/infra"
	"coloring-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// Repositories below run with Store.mu held by Within or WithDB.

type deviceRepository struct {
	s *Store
}

func (r *deviceRepository) GetOrCreate(_ context.Context, fingerprint string, policy device.Policy, now time.Time) (*device.Device, error) {
	d, ok := r.s.devices[fingerprint]
	if !ok {
		d = *device.New(fingerprint, now)
	}
	if !d.WeekStartedAt.After(policy.WindowStartCutoff(now)) {
		d.ResetWindow(now)
	}
	r.s.devices[fingerprint] = d
	return &d, nil
}

func (r *deviceRepository) TryConsumeFreeTier(_ context.Context, fingerprint string, policy device.Policy, now time.Time) (bool, error) {
	d, ok := r.s.devices[fingerprint]
	if !ok || policy.Limit <= 0 {
		return false, nil
	}
	if !d.WeekStartedAt.After(policy.WindowStartCutoff(now)) {
		d.ResetWindow(now)
	} else if d.UsageCount >= policy.Limit {
		return false, nil
	}
	d.UsageCount++
	d.UpdatedAt = now
	r.s.devices[fingerprint] = d
	return true, nil
}

type codeRepository struct {
	s *Store
}

func (r *codeRepository) Create(_ context.Context, code *redemption.RedemptionCode) error {
	if _, exists := r.s.codeIndex[code.Code]; exists {
		return infra.WrapRepoErr("duplicate redemption code", nil, infra.KindDuplicateKey)
	}
	if code.PurchaseID != nil {
		if _, ok := r.s.purchases[*code.PurchaseID]; !ok {
			return infra.WrapRepoErr("purchase does not exist", nil, infra.KindForeignKeyViolated)
		}
	}
	r.s.codes[code.ID] = *code
	r.s.codeIndex[code.Code] = code.ID
	return nil
}

func (r *codeRepository) FindByCode(_ context.Context, code redemption.Code) (*redemption.RedemptionCode, error) {
	id, ok := r.s.codeIndex[code]
	if !ok {
		return nil, infra.NewNotFound("redemption code not found")
	}
	c := r.s.codes[id]
	return &c, nil
}

func (r *codeRepository) FindByPurchase(_ context.Context, purchaseID uuid.UUID) ([]*redemption.RedemptionCode, error) {
	out := make([]*redemption.RedemptionCode, 0)
	for _, c := range r.s.codes {
		if c.PurchaseID != nil && *c.PurchaseID == purchaseID {
			cc := c
			out = append(out, &cc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *codeRepository) FindUsable(_ context.Context, fingerprint string, codes []redemption.Code) ([]*redemption.RedemptionCode, error) {
	wanted := make(map[redemption.Code]struct{}, len(codes))
	for _, c := range codes {
		wanted[c] = struct{}{}
	}

	out := make([]*redemption.RedemptionCode, 0)
	for _, c := range r.s.codes {
		if !c.IsUsable() {
			continue
		}
		_, listed := wanted[c.Code]
		bound := fingerprint != "" && c.RedeemedByFingerprint != nil && *c.RedeemedByFingerprint == fingerprint
		if listed || bound {
			cc := c
			out = append(out, &cc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RemainingTokens != out[j].RemainingTokens {
			return out[i].RemainingTokens > out[j].RemainingTokens
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

func (r *codeRepository) TryConsumeToken(_ context.Context, codeID uuid.UUID) (bool, error) {
	c, ok := r.s.codes[codeID]
	if !ok || !c.IsUsable() {
		return false, nil
	}
	c.RemainingTokens--
	r.s.codes[codeID] = c
	return true, nil
}

func (r *codeRepository) BindFingerprint(_ context.Context, codeID uuid.UUID, fingerprint string, now time.Time) (bool, error) {
	c, ok := r.s.codes[codeID]
	if !ok || c.RedeemedByFingerprint != nil {
		return false, nil
	}
	fp := fingerprint
	c.RedeemedByFingerprint = &fp
	c.RedeemedAt = &now
	r.s.codes[codeID] = c
	return true, nil
}

func (r *codeRepository) ActivateForPurchase(_ context.Context, purchaseID uuid.UUID, fingerprint *string, now time.Time) (int64, error) {
	var affected int64
	for id, c := range r.s.codes {
		if c.PurchaseID == nil || *c.PurchaseID != purchaseID || c.Status != redemption.StatusPending {
			continue
		}
		c.Status = redemption.StatusActive
		if c.RedeemedByFingerprint == nil && fingerprint != nil {
			fp := *fingerprint
			c.RedeemedByFingerprint = &fp
		}
		if c.RedeemedByFingerprint != nil && c.RedeemedAt == nil {
			at := now
			c.RedeemedAt = &at
		}
		r.s.codes[id] = c
		affected++
	}
	return affected, nil
}

func (r *codeRepository) InvalidateForPurchase(_ context.Context, purchaseID uuid.UUID, now time.Time) (int64, error) {
	var affected int64
	for id, c := range r.s.codes {
		if c.PurchaseID == nil || *c.PurchaseID != purchaseID {
			continue
		}
		if c.InvalidatedAt == nil {
			at := now
			c.InvalidatedAt = &at
		}
		r.s.codes[id] = c
		affected++
	}
	return affected, nil
}

func (r *codeRepository) DeletePendingForPurchase(_ context.Context, purchaseID uuid.UUID) (int64, error) {
	var affected int64
	for id, c := range r.s.codes {
		if c.PurchaseID == nil || *c.PurchaseID != purchaseID || c.Status != redemption.StatusPending {
			continue
		}
		r.s.deleteCode(id)
		affected++
	}
	return affected, nil
}

func (s *Store) deleteCode(id uuid.UUID) {
	c, ok := s.codes[id]
	if !ok {
		return
	}
	delete(s.codes, id)
	delete(s.codeIndex, c.Code)
	for i := range s.generations {
		if s.generations[i].RedemptionCodeID != nil && *s.generations[i].RedemptionCodeID == id {
			s.generations[i].RedemptionCodeID = nil
		}
	}
}

type purchaseRepository struct {
	s *Store
}

func (r *purchaseRepository) Create(_ context.Context, p *purchase.Purchase) error {
	if _, exists := r.s.purchases[p.ID]; exists {
		return infra.WrapRepoErr("duplicate purchase", nil, infra.KindDuplicateKey)
	}
	if p.StripeSessionID != nil && r.sessionTaken(*p.StripeSessionID, p.ID) {
		return infra.WrapRepoErr("duplicate checkout session", nil, infra.KindDuplicateKey)
	}
	r.s.purchases[p.ID] = *p
	return nil
}

func (r *purchaseRepository) AttachSession(_ context.Context, id uuid.UUID, sessionID string, now time.Time) error {
	p, ok := r.s.purchases[id]
	if !ok {
		return infra.NewNotFound("purchase not found")
	}
	if r.sessionTaken(sessionID, id) {
		return infra.WrapRepoErr("duplicate checkout session", nil, infra.KindDuplicateKey)
	}
	sid := sessionID
	p.StripeSessionID = &sid
	p.UpdatedAt = now
	r.s.purchases[id] = p
	return nil
}

func (r *purchaseRepository) FindByID(_ context.Context, id uuid.UUID) (*purchase.Purchase, error) {
	p, ok := r.s.purchases[id]
	if !ok {
		return nil, infra.NewNotFound("purchase not found")
	}
	return &p, nil
}

func (r *purchaseRepository) FindBySession(_ context.Context, sessionID string) (*purchase.Purchase, error) {
	for _, p := range r.s.purchases {
		if p.StripeSessionID != nil && *p.StripeSessionID == sessionID {
			pp := p
			return &pp, nil
		}
	}
	return nil, infra.NewNotFound("purchase not found")
}

func (r *purchaseRepository) FindByPaymentIntent(_ context.Context, paymentIntentID string) (*purchase.Purchase, error) {
	var found *purchase.Purchase
	for _, p := range r.s.purchases {
		if p.StripePaymentIntentID == nil || *p.StripePaymentIntentID != paymentIntentID {
			continue
		}
		if found == nil || p.CreatedAt.After(found.CreatedAt) {
			pp := p
			found = &pp
		}
	}
	if found == nil {
		return nil, infra.NewNotFound("purchase not found")
	}
	return found, nil
}

func (r *purchaseRepository) MarkCompleted(_ context.Context, id uuid.UUID, details shared.PurchaseCompletion, now time.Time) (bool, error) {
	p, ok := r.s.purchases[id]
	if !ok || (p.Status != purchase.StatusPending && p.Status != purchase.StatusCompleted) {
		return false, nil
	}
	p.Status = purchase.StatusCompleted
	if p.StripeSessionID == nil && details.SessionID != "" {
		sid := details.SessionID
		p.StripeSessionID = &sid
	}
	if details.PaymentIntentID != "" {
		pi := details.PaymentIntentID
		p.StripePaymentIntentID = &pi
	}
	if details.Email != "" {
		email := details.Email
		p.Email = &email
	}
	p.UpdatedAt = now
	r.s.purchases[id] = p
	return true, nil
}

func (r *purchaseRepository) MarkExpired(_ context.Context, id uuid.UUID, now time.Time) (bool, error) {
	p, ok := r.s.purchases[id]
	if !ok || p.Status != purchase.StatusPending {
		return false, nil
	}
	p.Status = purchase.StatusExpired
	p.UpdatedAt = now
	r.s.purchases[id] = p
	return true, nil
}

func (r *purchaseRepository) ApplyRefund(_ context.Context, id uuid.UUID, refundedAmountCents int32, now time.Time) (*purchase.Purchase, error) {
	p, ok := r.s.purchases[id]
	if !ok {
		return nil, infra.NewNotFound("purchase not refundable")
	}
	switch p.Status {
	case purchase.StatusCompleted, purchase.StatusPartiallyRefunded, purchase.StatusRefunded:
	default:
		return nil, infra.NewNotFound("purchase not refundable")
	}
	status, total, _ := p.RefundOutcome(refundedAmountCents)
	p.Status = status
	p.RefundedAmountCents = total
	p.UpdatedAt = now
	r.s.purchases[id] = p
	return &p, nil
}

func (r *purchaseRepository) Delete(_ context.Context, id uuid.UUID) error {
	for codeID, c := range r.s.codes {
		if c.PurchaseID != nil && *c.PurchaseID == id {
			r.s.deleteCode(codeID)
		}
	}
	delete(r.s.purchases, id)
	return nil
}

func (r *purchaseRepository) sessionTaken(sessionID string, except uuid.UUID) bool {
	for id, p := range r.s.purchases {
		if id != except && p.StripeSessionID != nil && *p.StripeSessionID == sessionID {
			return true
		}
	}
	return false
}

type generationRepository struct {
	s *Store
}

func (r *generationRepository) Record(_ context.Context, rec *generation.Record) error {
	if rec.RedemptionCodeID != nil {
		if _, ok := r.s.codes[*rec.RedemptionCodeID]; !ok {
			return infra.WrapRepoErr("redemption code does not exist", nil, infra.KindForeignKeyViolated)
		}
	}
	r.s.generations = append(r.s.generations, *rec)
	return nil
}

type paymentEventRepository struct {
	s *Store
}

func (r *paymentEventRepository) IsProcessed(_ context.Context, eventID string) (bool, error) {
	_, ok := r.s.paymentEvents[eventID]
	return ok, nil
}

func (r *paymentEventRepository) MarkProcessed(_ context.Context, eventID, eventType string, _ time.Time) error {
	if _, ok := r.s.paymentEvents[eventID]; !ok {
		r.s.paymentEvents[eventID] = eventType
	}
	return nil
}
