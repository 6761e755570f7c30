// services/overdue_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"freelancerdash-backend/config"
	"freelancerdash-backend/models"
	"freelancerdash-backend/storage"
	"freelancerdash-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// OverdueService sweeps pending invoices whose due date has passed and
// flips them to overdue. Updates go through the store's normal partial
// update path, so paidDate stickiness and merge rules hold. When Twilio
// is configured, a sweep that flipped anything sends a summary SMS to the
// owner's phone.
type OverdueService struct {
	store  storage.Store
	logger *zap.Logger
	client *twilio.RestClient
	cfg    config.TwilioConfig
	cron   *cron.Cron
}

func NewOverdueService(store storage.Store, logger *zap.Logger, cfg config.TwilioConfig) *OverdueService {
	s := &OverdueService{
		store:  store,
		logger: logger,
		cfg:    cfg,
	}
	if cfg.AccountSID != "" && cfg.AuthToken != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
	}
	return s
}

// StartScheduler runs the sweep on the given cron spec.
func (s *OverdueService) StartScheduler(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if _, err := s.SweepOnce(context.Background()); err != nil {
			s.logger.Error("overdue sweep failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("schedule overdue sweep: %w", err)
	}
	c.Start()
	s.cron = c
	s.logger.Info("overdue scheduler started", zap.String("spec", spec))
	return nil
}

// Stop halts the scheduler; a sweep already running finishes.
func (s *OverdueService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SweepOnce marks every pending invoice due before today as overdue and
// returns how many were flipped.
func (s *OverdueService) SweepOnce(ctx context.Context) (int, error) {
	invoices, err := s.store.GetInvoices(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := utils.BeginningOfDay(time.Now())
	flipped := 0
	for _, inv := range invoices {
		if inv.Status != models.InvoicePending || !inv.DueDate.Before(cutoff) {
			continue
		}
		status := models.InvoiceOverdue
		updated, err := s.store.UpdateInvoice(ctx, inv.ID, models.UpdateInvoiceInput{Status: &status})
		if err != nil {
			s.logger.Error("failed to mark invoice overdue",
				zap.Int("invoiceId", inv.ID), zap.Error(err))
			continue
		}
		if updated != nil {
			s.logger.Info("invoice marked overdue",
				zap.Int("invoiceId", inv.ID),
				zap.String("invoiceNumber", inv.InvoiceNumber))
			flipped++
		}
	}

	if flipped > 0 {
		s.notify(flipped)
	}
	return flipped, nil
}

func (s *OverdueService) notify(count int) {
	if s.client == nil || s.cfg.NotifyNumber == "" {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(s.cfg.NotifyNumber)
	params.SetFrom(s.cfg.FromNumber)
	params.SetBody(fmt.Sprintf("%d invoice(s) became overdue today. Check your dashboard.", count))

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.logger.Error("failed to send overdue notification", zap.Error(err))
		return
	}
	if resp.Sid != nil {
		s.logger.Info("overdue notification sent", zap.String("sid", *resp.Sid))
	}
}
