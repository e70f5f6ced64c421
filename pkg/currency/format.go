package currency

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatAmount renders a converted amount for display: the number with
// exactly two fraction digits and locale-appropriate grouping, the
// uppercase ISO code, and the representative symbol when one is
// registered ("1,234.56 EUR €"). Codes without a symbol, or whose symbol
// is the code itself, show only amount and code.
func (r *Resolver) FormatAmount(amount float64, code string, loc LocaleContext) string {
	code = strings.ToUpper(code)

	tag := language.English
	if loc.Language != "" {
		if t, err := language.Parse(loc.Language); err == nil {
			tag = t
		}
	}

	p := message.NewPrinter(tag)
	formatted := p.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))

	if sym, ok := r.Symbol(code); ok && sym != code {
		return formatted + " " + code + " " + sym
	}
	return formatted + " " + code
}
