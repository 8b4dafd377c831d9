package services

import (
	"context"
	"time"

	"github.com/medireon/site/pkg/clients/intake"
	pkgerrors "github.com/medireon/site/pkg/errors"
	"github.com/medireon/site/pkg/logger"
	"github.com/medireon/site/pkg/metrics"
	"github.com/medireon/site/pkg/models"
	"github.com/medireon/site/pkg/utils"
)

// LeadSubmissionService defines the interface for handling form submissions
type LeadSubmissionService interface {
	Submit(ctx context.Context, visitorID string, lead models.Lead) (*Task, error)
}

type leadSubmissionServiceImpl struct {
	intakeClient intake.Client
	guard        *InFlightGuard
	metrics      *metrics.LeadMetrics
	logg         *logger.Logger
}

// NewLeadSubmissionService creates a new submission service
func NewLeadSubmissionService(
	intakeClient intake.Client,
	guard *InFlightGuard,
	leadMetrics *metrics.LeadMetrics,
	logg *logger.Logger,
) LeadSubmissionService {
	if guard == nil {
		guard = NewInFlightGuard(0)
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &leadSubmissionServiceImpl{
		intakeClient: intakeClient,
		guard:        guard,
		metrics:      leadMetrics,
		logg:         logg,
	}
}

// Submit validates the lead and starts exactly one delivery to the intake
// endpoint. Validation and duplicate-submit failures are returned directly;
// the delivery result arrives through the Task. Cancelling ctx does not
// abort the delivery.
func (s *leadSubmissionServiceImpl) Submit(ctx context.Context, visitorID string, lead models.Lead) (*Task, error) {
	if lead == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "missing submission")
	}
	lead = models.Trim(lead)
	form := string(lead.Form())

	ctx = s.logg.WithFields(ctx, map[string]any{
		"form":    form,
		"contact": utils.HashContact(lead.Contact()),
	})

	if err := models.Validate(lead); err != nil {
		s.metrics.IncSubmission(form, metrics.OutcomeInvalid)
		s.logg.Debug(ctx, "lead.invalid")
		return nil, err
	}

	release, err := s.guard.Acquire(visitorID + ":" + form)
	if err != nil {
		s.metrics.IncSubmission(form, metrics.OutcomeDuplicate)
		s.logg.Warn(ctx, "lead.duplicate_in_flight")
		return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "submission already in progress")
	}

	task := newTask()
	// keep logging fields but detach from the request's lifetime
	sendCtx := context.WithoutCancel(ctx)

	go func() {
		start := time.Now()
		err := s.intakeClient.Submit(sendCtx, lead.Values())
		s.metrics.ObserveDuration(form, time.Since(start))

		if err != nil {
			s.metrics.IncSubmission(form, metrics.OutcomeFailed)
			s.logg.Error(sendCtx, "lead.delivery_failed", err)
		} else {
			s.metrics.IncSubmission(form, metrics.OutcomeDelivered)
			s.logg.Info(sendCtx, "lead.delivered")
		}
		// free the form before anyone observing the task can resubmit
		release()
		task.resolve(err)
	}()

	return task, nil
}
