package models

import "time"

// DateLayout is the layout of Quotation.Date.
const DateLayout = "2006-01-02"

// Fundamental holds the latest balance-sheet ratios of a ticker.
type Fundamental struct {
	Ticker                  string    `gorm:"primaryKey;size:16" json:"ticker"`
	ReturnOnInvestedCapital float64   `gorm:"column:return_on_invested_capital" json:"returnOnInvestedCapital"`
	PriceToEarnings         float64   `gorm:"column:price_to_earnings" json:"priceToEarnings"`
	CAGR                    float64   `gorm:"column:cagr" json:"cagr"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// TableName overrides the table name used by Fundamental to `fundamentals`.
func (Fundamental) TableName() string {
	return "fundamentals"
}

// Quotation is one daily bar of a ticker.
type Quotation struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Ticker string  `gorm:"size:16;not null;index:idx_quotations_ticker_date" json:"ticker"`
	Date   string  `gorm:"size:10;not null;index:idx_quotations_ticker_date" json:"date"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// TableName overrides the table name used by Quotation to `quotations`.
func (Quotation) TableName() string {
	return "quotations"
}

// All lists every model the database feature migrates.
func All() []any {
	return []any{&Fundamental{}, &Quotation{}}
}
