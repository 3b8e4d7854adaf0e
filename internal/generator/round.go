package generator

import "github.com/shopspring/decimal"

// Round rounds half away from zero on the shortest decimal form of x,
// so Round(2.675, 2) is 2.68.
func Round(x float64, places int32) float64 {
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}

// FinalPrice is price*(1-discount/100) rounded to cents, computed in decimal.
func FinalPrice(price float64, discountPercent int) float64 {
	d := decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(int64(100 - discountPercent))).
		Div(decimal.NewFromInt(100))
	return d.Round(2).InexactFloat64()
}
