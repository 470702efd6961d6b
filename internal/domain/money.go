package domain

import (
	"fmt"
	"strings"
)

// Money is an amount in centavos
type Money int64

// Reais builds a Money value from whole reais
func Reais(v int64) Money {
	return Money(v * 100)
}

// Centavos returns the amount in centavos
func (m Money) Centavos() int64 {
	return int64(m)
}

// Float returns the amount in reais as float64 (for JSON payloads)
func (m Money) Float() float64 {
	return float64(m) / 100
}

// String formats the amount as "R$ 65,00"
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := fmt.Sprintf("%d.%02d", v/100, v%100)
	return "R$ " + sign + strings.Replace(s, ".", ",", 1)
}
