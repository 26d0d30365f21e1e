package services

// CurrencyOptions lists the currencies a deal can be priced in.
var CurrencyOptions = []string{"ETB", "KES", "USD", "EUR"}

// ForexOptions lists who bears the foreign-exchange risk.
var ForexOptions = []string{"LeanChems", "Client"}

// BusinessUnitOptions lists the company's business units.
var BusinessUnitOptions = []string{"Hayat", "Alhadi", "Bet-chem", "Barracoda", "Nyumb-Chem"}

// IncotermOptions lists the supported delivery/trade terms.
var IncotermOptions = []string{"Import of Record", "Agency", "Direct Import", "Stock – Addis Ababa"}

// UnitOptions lists the quantity units used across pipeline and stock pages.
var UnitOptions = []string{"kg", "ton", "g", "lb", "piece", "unit"}

// PaymentTermsOptions are the preset payment terms offered on the quote form.
var PaymentTermsOptions = []string{
	"Option 1: 50% advance upon signing, 50% upon final delivery",
	"Option 2: 50% advance, 30% at dry port, 20% upon delivery",
	"Option 3: 60% advance upon signing, 40% upon final delivery",
	"Option 4: 30% advance, 40% at dry port, 30% upon delivery",
	"Option 5: 50% advance, 25% at dry port, 25% upon delivery",
}

// isOption reports whether v is one of the allowed values.
func isOption(v string, options []string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}

// IsValidCurrency reports whether v is a supported currency code.
func IsValidCurrency(v string) bool { return isOption(v, CurrencyOptions) }

// IsValidForex reports whether v is a supported forex risk bearer.
func IsValidForex(v string) bool { return isOption(v, ForexOptions) }

// IsValidBusinessUnit reports whether v is a known business unit.
func IsValidBusinessUnit(v string) bool { return isOption(v, BusinessUnitOptions) }

// IsValidIncoterm reports whether v is a supported incoterm.
func IsValidIncoterm(v string) bool { return isOption(v, IncotermOptions) }
