package model

import "github.com/shopspring/decimal"

// Decimal is a JSON-transparent arbitrary-precision number. Provider payloads
// carry monetary amounts either quoted or bare; both forms decode here.
type Decimal struct {
	value decimal.Decimal
}

func NewDecimalFromString(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{
		value: d,
	}, nil
}

// NewDecimalFromMinorUnits interprets amount as a count of 10^-exponent
// currency units, e.g. cents with exponent 2 or yen with exponent 0.
func NewDecimalFromMinorUnits(amount int64, exponent int32) Decimal {
	return Decimal{
		value: decimal.New(amount, -exponent),
	}
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.value.String()), nil
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	return d.value.UnmarshalJSON(b)
}

func (d Decimal) String() string {
	return d.value.String()
}

func (d Decimal) IsPositive() bool {
	return d.value.IsPositive()
}

// Money is an amount with its ISO currency code, as carried by payment
// provider events.
type Money struct {
	Value    Decimal `json:"value"`
	Currency string  `json:"currency"`
}
