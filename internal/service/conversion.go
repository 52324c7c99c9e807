package service

import (
	"fxdashboard/internal/currency"
	"fxdashboard/internal/provider"
)

// Conversion is the result of a latest or historical rate lookup for an amount.
//   - Date is the date the user asked for (the provider date for latest lookups).
//   - EffectiveDate is the date the provider actually quoted, which differs from
//     Date on weekends and holidays.
//   - Rate, Amount, Converted and Inverse are rounded for display.
type Conversion struct {
	Date          string
	EffectiveDate string
	From          string
	To            string
	Amount        float64
	Rate          float64
	Converted     float64
	Inverse       float64
	Summary       string
}

func newConversion(date string, quoted provider.DatedRate, from, to string, amount float64) *Conversion {
	rate := currency.RoundRate(quoted.Rate)
	return &Conversion{
		Date:          date,
		EffectiveDate: quoted.Date,
		From:          from,
		To:            to,
		Amount:        currency.RoundRate(amount),
		Rate:          rate,
		Converted:     currency.Convert(rate, amount),
		Inverse:       currency.ReverseRate(rate),
		Summary:       currency.FormatOutput(date, from, to, quoted.Rate, amount),
	}
}
