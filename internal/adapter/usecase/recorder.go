package usecase

import "campaign-autopilot/internal/core/port"

type nopRecorder struct{}

func (nopRecorder) RecordProduction(port.ProductionOutcome) {}

func (nopRecorder) RecordEmailTransition(port.CallbackAction, port.ItemOutcome) {}
