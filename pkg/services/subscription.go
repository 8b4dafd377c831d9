package services

import (
	"context"

	"github.com/medireon/site/pkg/flagstore"
	"github.com/medireon/site/pkg/logger"
)

// SubscriptionService owns the "already subscribed" flag. Views read it once
// per render and it is written once after a successful signup.
type SubscriptionService struct {
	store flagstore.Store
	logg  *logger.Logger
}

func NewSubscriptionService(store flagstore.Store, logg *logger.Logger) *SubscriptionService {
	if store == nil {
		store = flagstore.BrowserOnly()
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &SubscriptionService{store: store, logg: logg}
}

// Subscribed reports the server-side flag. A store failure reads as not
// subscribed; the visitor just sees the form again.
func (s *SubscriptionService) Subscribed(ctx context.Context, visitorID string) bool {
	if visitorID == "" {
		return false
	}
	ok, err := s.store.Load(ctx, visitorID)
	if err != nil {
		s.logg.Error(ctx, "subscription.load_failed", err)
		return false
	}
	return ok
}

// MarkSubscribed records the flag. Failures are logged, never surfaced: the
// flag is cosmetic and the lead was already delivered.
func (s *SubscriptionService) MarkSubscribed(ctx context.Context, visitorID string) {
	if visitorID == "" {
		return
	}
	if err := s.store.Save(ctx, visitorID); err != nil {
		s.logg.Error(ctx, "subscription.save_failed", err)
	}
}
