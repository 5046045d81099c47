package converter

import (
	dto "slot_backend/internal/api/dto/admin"
	"slot_backend/internal/model"
)

func ToConfigResponse(pt model.Paytable) dto.Config {
	reels := make([][]string, len(pt.Reels))
	for i, reel := range pt.Reels {
		reels[i] = make([]string, len(reel))
		for j, sym := range reel {
			reels[i][j] = string(sym)
		}
	}

	pay3 := make(map[string]float64, len(pt.Pay3))
	for sym, mult := range pt.Pay3 {
		pay3[string(sym)] = mult
	}

	return dto.Config{
		StartBalanceMinor:  pt.StartBalanceMinor,
		Reels:              reels,
		Pay3:               pay3,
		AnyTwoSevensMult:   pt.AnyTwoSevensMult,
		AnyTwoCherriesMult: pt.AnyTwoCherriesMult,
		SingleCherryMult:   pt.SingleCherryMult,
		MinBetMinor:        pt.MinBetMinor,
		AllowOverBalance:   pt.AllowOverBalance,
	}
}

// ToPaytablePatch переводит wire-патч в доменный. Символы здесь не
// проверяются — невалидные отсеет валидация слитой модели.
func ToPaytablePatch(req dto.PatchRequest) model.PaytablePatch {
	patch := model.PaytablePatch{
		StartBalanceMinor:  req.StartBalanceMinor,
		AnyTwoSevensMult:   req.AnyTwoSevensMult,
		AnyTwoCherriesMult: req.AnyTwoCherriesMult,
		SingleCherryMult:   req.SingleCherryMult,
		MinBetMinor:        req.MinBetMinor,
		AllowOverBalance:   req.AllowOverBalance,
	}

	if req.Reels != nil {
		reels := make([]model.Reel, len(*req.Reels))
		for i, raw := range *req.Reels {
			reels[i] = make(model.Reel, len(raw))
			for j, sym := range raw {
				reels[i][j] = model.Symbol(sym)
			}
		}
		patch.Reels = &reels
	}

	if req.Pay3 != nil {
		patch.Pay3 = make(map[model.Symbol]float64, len(req.Pay3))
		for sym, mult := range req.Pay3 {
			patch.Pay3[model.Symbol(sym)] = mult
		}
	}

	return patch
}

func ToReport(report model.RTPReport) dto.Report {
	return dto.Report{
		RTP:            report.RTP,
		HitRate:        report.HitRate,
		TripleSeven:    report.TripleSeven,
		TripleCherry:   report.TripleCherry,
		AnyTwoSevens:   report.AnyTwoSevens,
		AnyTwoCherries: report.AnyTwoCherries,
		SingleCherry:   report.SingleCherry,
	}
}

func ToStatsResponse(stats model.SlotStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalSpins:       stats.TotalSpins,
		TotalBetMinor:    stats.TotalBetMinor,
		TotalPayoutMinor: stats.TotalPayoutMinor,
		RTPPercent:       stats.RTPPercent,
		WindowRTPPercent: stats.WindowRTPPercent,
		WindowSize:       stats.WindowSize,
	}
}
