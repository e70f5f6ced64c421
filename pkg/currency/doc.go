// Package currency resolves currency symbols to ISO codes, parses
// locale-ambiguous amounts, and formats converted values for display.
//
// # Symbol resolution
//
// [Resolver.Detect] looks up a matched symbol or code in the built-in
// symbol table. Symbols shared by many countries ("$", "kr", "¥") are
// resolved through a deterministic chain over an explicit
// [LocaleContext]: declared country first, then English-page USD bias,
// then the top-level domain, then the table's fixed candidate order.
// Unknown symbols resolve to the [UnknownCurrency] sentinel value; never
// an error, since ordinary text is full of near-symbols.
//
//	r := currency.NewResolver()
//	r.Detect("€", currency.LocaleContext{})                  // "EUR"
//	r.Detect("$", currency.ParseLocale("en-CA", ""))         // "CAD"
//	r.Detect("⁂", currency.LocaleContext{})                  // currency.UnknownCurrency
//
// # Amount parsing
//
// [ExtractAmount] understands both US-style and European-style grouped
// numerals plus apostrophe and space separators:
//
//	currency.ExtractAmount("€1.234,56") // 1234.56
//	currency.ExtractAmount("$1,234.56") // 1234.56
//
// The single-separator heuristics are inherently ambiguous; see the
// function documentation for the exact rules.
//
// # Formatting
//
// [Resolver.FormatAmount] renders amounts with two fraction digits,
// locale-aware grouping via golang.org/x/text, the uppercase ISO code,
// and a representative symbol when one is registered.
package currency
