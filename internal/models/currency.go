package models

// CurrencySymbols mapea cada moneda soportada a su símbolo de visualización.
var CurrencySymbols = map[string]string{
	"usd": "$",
	"eur": "€",
	"gbp": "£",
	"jpy": "¥",
	"inr": "₹",
}

// DefaultCurrency es la moneda usada cuando el cliente no especifica una.
const DefaultCurrency = "usd"

// IsValidCurrency indica si la moneda está dentro del conjunto soportado.
func IsValidCurrency(currency string) bool {
	_, ok := CurrencySymbols[currency]
	return ok
}

// CurrencySymbol devuelve el símbolo de la moneda, o "$" si no es conocida.
func CurrencySymbol(currency string) string {
	if symbol, ok := CurrencySymbols[currency]; ok {
		return symbol
	}
	return "$"
}
