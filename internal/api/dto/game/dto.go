package game

type PlaceBetRequest struct {
	Stake       float64  `json:"stake"`        // Размер ставки (> 0)
	AutoCashout *float64 `json:"auto_cashout"` // Авто-вывод (>= 1.0), опционально
}

type RoundResponse struct {
	State       string   `json:"state"`                  // armed / running / resolved
	Stake       float64  `json:"stake"`                  // Ставка
	Progress    float64  `json:"progress"`               // Текущий множитель
	AutoCashout *float64 `json:"auto_cashout,omitempty"` // Заданный авто-вывод
	Speed       float64  `json:"speed"`                  // Прирост множителя за тик
	Outcome     string   `json:"outcome,omitempty"`      // won / lost, только после завершения
	Payout      float64  `json:"payout"`                 // Выплата (0 при краше)
	CrashTarget float64  `json:"crash_target,omitempty"` // Раскрывается только после завершения
}
