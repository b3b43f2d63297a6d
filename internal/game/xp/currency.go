package xp

import "fmt"

// Currency is a gold-equivalent amount split into denominations.
// One gold piece is ten silver pieces; one silver piece is ten copper pieces.
//
// A normalized Currency has 0 <= Silver <= 9 and 0 <= Copper <= 9.
type Currency struct {
	Gold   int `yaml:"gold" validate:"min=0"`
	Silver int `yaml:"silver" validate:"min=0"`
	Copper int `yaml:"copper" validate:"min=0"`
}

// CurrencyFromCopper splits a copper amount into denominations.
//
// Precondition: copper >= 0.
// Postcondition: Returns a normalized Currency c with c.InCopper() == copper.
func CurrencyFromCopper(copper int) Currency {
	if copper < 0 {
		panic(fmt.Sprintf("xp: CurrencyFromCopper precondition violated: copper must be >= 0, got %d", copper))
	}
	return Currency{
		Gold:   copper / 100,
		Silver: (copper % 100) / 10,
		Copper: copper % 10,
	}
}

// InCopper returns c expressed in copper pieces.
func (c Currency) InCopper() int {
	return c.Gold*100 + c.Silver*10 + c.Copper
}

// Normalize folds any silver or copper carry into the higher denominations.
//
// Precondition: c.InCopper() >= 0.
func (c Currency) Normalize() Currency {
	return CurrencyFromCopper(c.InCopper())
}

// Add returns the normalized sum of c and o.
func (c Currency) Add(o Currency) Currency {
	return CurrencyFromCopper(c.InCopper() + o.InCopper())
}

// IsZero reports whether c is worth nothing.
func (c Currency) IsZero() bool {
	return c.InCopper() == 0
}

// Normalized reports whether both minor denominations are within 0..9.
func (c Currency) Normalized() bool {
	return c.Silver >= 0 && c.Silver <= 9 && c.Copper >= 0 && c.Copper <= 9
}
