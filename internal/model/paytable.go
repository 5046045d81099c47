package model

// Paytable — активная модель игры: ленты барабанов, таблица выплат и ограничения ставки.
// Снимок неизменяем: стор всегда публикует новый полностью валидный экземпляр,
// живой экземпляр никогда не правится по полям.
type Paytable struct {
	// Стартовый баланс новой гостевой сессии, в минорных единицах (копейках)
	StartBalanceMinor int64 `json:"startBalanceMinor" yaml:"startBalanceMinor"`
	// Ровно 3 ленты, по одной на физический барабан
	Reels []Reel `json:"reels" yaml:"reels"`
	// Выплаты за три одинаковых символа (множитель ставки)
	Pay3 map[Symbol]float64 `json:"pay3" yaml:"pay3"`
	// Резервные правила: две семёрки / две вишни / хотя бы одна вишня
	AnyTwoSevensMult   float64 `json:"anyTwoSevensMult" yaml:"anyTwoSevensMult"`
	AnyTwoCherriesMult float64 `json:"anyTwoCherriesMult" yaml:"anyTwoCherriesMult"`
	SingleCherryMult   float64 `json:"singleCherryMult" yaml:"singleCherryMult"`
	// Минимальная ставка, в минорных единицах
	MinBetMinor int64 `json:"minBetMinor" yaml:"minBetMinor"`
	// Разрешать ли ставку больше текущего баланса
	AllowOverBalance bool `json:"allowOverBalance" yaml:"allowOverBalance"`
}

// Clone возвращает глубокую копию модели
func (p Paytable) Clone() Paytable {
	out := p

	out.Reels = make([]Reel, len(p.Reels))
	for i, r := range p.Reels {
		out.Reels[i] = append(Reel(nil), r...)
	}

	out.Pay3 = make(map[Symbol]float64, len(p.Pay3))
	for sym, mult := range p.Pay3 {
		out.Pay3[sym] = mult
	}

	return out
}

// PaytablePatch — типизированное частичное обновление модели.
// nil-поле означает "не трогать". Reels заменяется целиком (это массив),
// Pay3 сливается по ключам (это объект).
type PaytablePatch struct {
	StartBalanceMinor  *int64             `json:"startBalanceMinor,omitempty"`
	Reels              *[]Reel            `json:"reels,omitempty"`
	Pay3               map[Symbol]float64 `json:"pay3,omitempty"`
	AnyTwoSevensMult   *float64           `json:"anyTwoSevensMult,omitempty"`
	AnyTwoCherriesMult *float64           `json:"anyTwoCherriesMult,omitempty"`
	SingleCherryMult   *float64           `json:"singleCherryMult,omitempty"`
	MinBetMinor        *int64             `json:"minBetMinor,omitempty"`
	AllowOverBalance   *bool              `json:"allowOverBalance,omitempty"`
}

// DefaultPaytable возвращает встроенную модель по умолчанию.
// Числа подобраны под RTP около 95% при равномерном выборе по лентам
func DefaultPaytable() Paytable {
	return Paytable{
		StartBalanceMinor: 100000,
		Reels: []Reel{
			{
				SymbolSeven, SymbolSeven,
				SymbolBar, SymbolBar, SymbolBar,
				SymbolBell, SymbolBell,
				SymbolCherry, SymbolCherry, SymbolCherry, SymbolCherry,
				SymbolLemon, SymbolLemon, SymbolLemon, SymbolLemon, SymbolLemon,
			},
			{
				SymbolSeven,
				SymbolBar, SymbolBar, SymbolBar,
				SymbolBell, SymbolBell,
				SymbolCherry, SymbolCherry, SymbolCherry, SymbolCherry,
				SymbolLemon, SymbolLemon, SymbolLemon, SymbolLemon,
				SymbolSeven, SymbolLemon,
			},
			{
				SymbolSeven,
				SymbolBar, SymbolBar,
				SymbolBell, SymbolBell,
				SymbolCherry, SymbolCherry, SymbolCherry,
				SymbolLemon, SymbolLemon, SymbolLemon,
				SymbolSeven, SymbolBar, SymbolCherry, SymbolLemon, SymbolBell,
			},
		},
		Pay3: map[Symbol]float64{
			SymbolSeven:  100,
			SymbolBar:    40,
			SymbolBell:   20,
			SymbolCherry: 10,
			SymbolLemon:  0,
		},
		AnyTwoSevensMult:   5,
		AnyTwoCherriesMult: 3,
		SingleCherryMult:   1,
		MinBetMinor:        100,
		AllowOverBalance:   false,
	}
}
