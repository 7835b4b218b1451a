package metrics

import (
	"context"

	"github.com/oac-maputo/supertaca/models"
	"github.com/oac-maputo/supertaca/services"
)

type instrumentedRegistration struct {
	next     services.RegistrationService
	recorder *Recorder
}

// InstrumentRegistration counts every submission that goes through svc.
func InstrumentRegistration(svc services.RegistrationService, recorder *Recorder) services.RegistrationService {
	if recorder == nil {
		return svc
	}
	return &instrumentedRegistration{next: svc, recorder: recorder}
}

func (s *instrumentedRegistration) Submit(ctx context.Context, match models.MatchDraft, goals []models.GoalDraft) (*services.SubmitResult, error) {
	result, err := s.next.Submit(ctx, match, goals)
	s.recorder.RecordSubmission(result, err)
	return result, err
}

type instrumentedPublication struct {
	next     services.PublicationService
	recorder *Recorder
}

// InstrumentPublication counts every publication attempt that goes through svc.
func InstrumentPublication(svc services.PublicationService, recorder *Recorder) services.PublicationService {
	if recorder == nil {
		return svc
	}
	return &instrumentedPublication{next: svc, recorder: recorder}
}

func (s *instrumentedPublication) Publish(ctx context.Context) (*services.PublishResult, error) {
	result, err := s.next.Publish(ctx)
	s.recorder.RecordPublication(err)
	return result, err
}
