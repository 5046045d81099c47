package admin

// Config — полная модель игры в том виде, в котором она ходит по проводу
type Config struct {
	StartBalanceMinor  int64              `json:"startBalanceMinor"`
	Reels              [][]string         `json:"reels"`
	Pay3               map[string]float64 `json:"pay3"`
	AnyTwoSevensMult   float64            `json:"anyTwoSevensMult"`
	AnyTwoCherriesMult float64            `json:"anyTwoCherriesMult"`
	SingleCherryMult   float64            `json:"singleCherryMult"`
	MinBetMinor        int64              `json:"minBetMinor"`
	AllowOverBalance   bool               `json:"allowOverBalance"`
}

// PatchRequest — частичное обновление: nil-поле не трогается,
// reels заменяется целиком, pay3 сливается по ключам
type PatchRequest struct {
	StartBalanceMinor  *int64             `json:"startBalanceMinor,omitempty"`
	Reels              *[][]string        `json:"reels,omitempty"`
	Pay3               map[string]float64 `json:"pay3,omitempty"`
	AnyTwoSevensMult   *float64           `json:"anyTwoSevensMult,omitempty"`
	AnyTwoCherriesMult *float64           `json:"anyTwoCherriesMult,omitempty"`
	SingleCherryMult   *float64           `json:"singleCherryMult,omitempty"`
	MinBetMinor        *int64             `json:"minBetMinor,omitempty"`
	AllowOverBalance   *bool              `json:"allowOverBalance,omitempty"`
}

type UpdateResponse struct {
	OK     bool   `json:"ok"`
	Config Config `json:"config"`
}

// Report — теоретическая оценка кандидата модели, все величины в процентах
type Report struct {
	RTP            float64 `json:"rtp"`
	HitRate        float64 `json:"hit"`
	TripleSeven    float64 `json:"p777"`
	TripleCherry   float64 `json:"pCherry3"`
	AnyTwoSevens   float64 `json:"p2Seven"`
	AnyTwoCherries float64 `json:"p2Cherry"`
	SingleCherry   float64 `json:"pSingleCherry"`
}

type EvaluateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"` // Полный список нарушений кандидата
	Report *Report  `json:"report,omitempty"` // Присутствует только для валидного кандидата
}

type StatsResponse struct {
	TotalSpins       int64   `json:"totalSpins"`
	TotalBetMinor    int64   `json:"totalBetMinor"`
	TotalPayoutMinor int64   `json:"totalPayoutMinor"`
	RTPPercent       float64 `json:"rtpPercent"`
	WindowRTPPercent float64 `json:"windowRtpPercent"`
	WindowSize       int     `json:"windowSize"`
}
