package converter

import (
	dto "slot_backend/internal/api/dto/slot"
	"slot_backend/internal/model"
)

func ToSlotSpin(sessionID string, req dto.SpinRequest) model.SlotSpin {
	return model.SlotSpin{
		SessionID: sessionID,
		BetMinor:  req.BetMinor,
	}
}

func ToSpinResponse(outcome model.SpinOutcome) dto.SpinResponse {
	var symbols [3]string
	for i, sym := range outcome.Symbols {
		symbols[i] = string(sym)
	}

	return dto.SpinResponse{
		SpinID:    outcome.SpinID,
		ReelStops: outcome.Stops,
		WinMinor:  outcome.WinMinor,
		Breakdown: dto.Breakdown{
			Symbols: symbols,
			Mult:    outcome.Mult,
			Reason:  outcome.Reason,
		},
		Sig: outcome.Sig,
	}
}
