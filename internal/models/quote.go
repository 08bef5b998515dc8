package models

// Quote is a snapshot of a security's current and recent trading data.
// Numeric fields are rounded to two decimals at construction time, and
// zero marks a field the upstream provider did not supply.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	CurrentPrice  float64 `json:"current_price"`
	PreviousClose float64 `json:"previous_close"`
	Open          float64 `json:"open"`
	DayHigh       float64 `json:"day_high"`
	DayLow        float64 `json:"day_low"`
	Volume        int64   `json:"volume"`
	MarketCap     int64   `json:"market_cap"`
	Week52High    float64 `json:"week_52_high"`
	Week52Low     float64 `json:"week_52_low"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}
