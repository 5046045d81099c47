package model

// Symbol — символ на барабане. Закрытое множество из пяти значений,
// идентичность задаётся самим строковым тегом (он же уходит на клиент и в конфиг).
type Symbol string

const (
	SymbolSeven  Symbol = "Seven"
	SymbolBar    Symbol = "Bar"
	SymbolBell   Symbol = "Bell"
	SymbolCherry Symbol = "Cherry"
	SymbolLemon  Symbol = "Lemon"
)

// Symbols — полный список символов в фиксированном порядке.
// Порядок важен для перечисления исходов в RTP-оценке.
var Symbols = []Symbol{SymbolSeven, SymbolBar, SymbolBell, SymbolCherry, SymbolLemon}

// IsValid проверяет, что символ входит в закрытое множество
func (s Symbol) IsValid() bool {
	switch s {
	case SymbolSeven, SymbolBar, SymbolBell, SymbolCherry, SymbolLemon:
		return true
	}
	return false
}

// Reel — лента барабана: упорядоченная непустая последовательность символов.
// Частота символа в ленте кодирует его вероятность (равномерный выбор индекса).
type Reel []Symbol
