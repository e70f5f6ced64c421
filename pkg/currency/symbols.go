package currency

// symbolToCodes maps display symbols and wire codes to ISO currency code
// candidates. Ambiguous symbols ("$", "kr", "¥") list every candidate;
// slice order is the fixed tie-break order used when the locale heuristic
// resolves nothing, so the most widely used currency comes first.
var symbolToCodes = map[string][]string{
	"Dhs": {"AED"},
	"Dh":  {"AED"},
	"د.إ": {"AED"},
	"Af":  {"AFN"},
	"Afs": {"AFN"},
	"؋":   {"AFN"},
	"Lek": {"ALL"},
	"֏":   {"AMD"},
	"ƒ":   {"ANG"},
	"NAƒ": {"ANG"},
	"NAf": {"ANG"},
	"f":   {"ANG"},
	"Kz":  {"AOA"},
	"$": {
		"USD", "ARS", "AUD", "BBD", "BMD", "BND", "BZD", "CAD", "CLP",
		"COP", "CUP", "DOP", "FJD", "GYD", "HKD", "JMD", "KYD", "LRD",
		"MOP", "MXN", "NAD", "NIO", "NZD", "SBD", "SGD", "SRD", "TTD",
		"TWD", "XCD",
	},
	"Arg$": {"ARS"},
	"Au$":  {"AUD"},
	"A$":   {"AUD"},
	"Afl":  {"AWG"},
	"₼":    {"AZN"},
	"KM":   {"BAM"},
	"BB$":  {"BBD"},
	"BBD$": {"BBD"},
	"BDS$": {"BBD"},
	"৳":    {"BDT"},
	"лв":   {"BGN"},
	"lv":   {"BGN"},
	"د.ب":  {"BHD"},
	"BD":   {"BHD"},
	"B.D.": {"BHD"},
	"bd":   {"BHD"},
	"FBu":  {"BIF"},
	"BD$":  {"BMD"},
	"B$":   {"BND"},
	"Bs":   {"BOB"},
	"R$":   {"BRL"},
	"Nu":   {"BTN"},
	"P":    {"BWP"},
	"Br":   {"BYN", "ETB"},
	"BZ$":  {"BZD"},
	"CA$":  {"CAD"},
	"Can$": {"CAD"},
	"C$":   {"CAD", "NIO"},
	"FC":   {"CDF", "KMF"},
	"₣":    {"CHF"},
	"CLP$": {"CLP"},
	"¥":    {"JPY", "CNY"},
	"円":    {"JPY"},
	"CN¥":  {"CNY"},
	"Col$": {"COP"},
	"₡":    {"CRC"},
	"$MN":  {"CUP"},
	"Esc":  {"CVE"},
	"Kč":   {"CZK"},
	"Fdj":  {"DJF"},
	"kr":   {"DKK", "ISK", "NOK", "SEK"},
	"RD$":  {"DOP"},
	"دج":   {"DZD"},
	"DA":   {"DZD"},
	"E£":   {"EGP"},
	"£E":   {"EGP"},
	"LE":   {"EGP"},
	"Nkf":  {"ERN"},
	"ብር":   {"ETB"},
	"€":    {"EUR"},
	"FJ$":  {"FJD"},
	"£":    {"GBP"},
	"₾":    {"GEL"},
	"GH₵":  {"GHS"},
	"GH¢":  {"GHS"},
	"D":    {"GMD"},
	"FG":   {"GNF"},
	"Fr":   {"GNF"},
	"GFr":  {"GNF"},
	"Q":    {"GTQ"},
	"G$":   {"GYD"},
	"GY$":  {"GYD"},
	"HK$":  {"HKD"},
	"元":    {"HKD"},
	"L":    {"HNL", "MDL"},
	"G":    {"HTG"},
	"Ft":   {"HUF"},
	"Rp":   {"IDR"},
	"₪":    {"ILS"},
	"₹":    {"INR"},
	"د.ع":  {"IQD"},
	"ID":   {"IQD"},
	"﷼":    {"IRR", "OMR", "YER"},
	"RI":   {"IRR"},
	"J$":   {"JMD"},
	"د.أ":  {"JOD"},
	"KSh":  {"KES"},
	"сом":  {"KGS"},
	"som":  {"KGS"},
	"៛":    {"KHR"},
	"₩":    {"KRW"},
	"د.ك":  {"KWD"},
	"KD":   {"KWD"},
	"CI$":  {"KYD"},
	"₸":    {"KZT"},
	"₭":    {"LAK"},
	"₭N":   {"LAK"},
	"ل.ل":  {"LBP"},
	"LL":   {"LBP"},
	"රු":   {"LKR"},
	"Rs":   {"LKR", "MUR", "PKR"},
	"Re":   {"LKR"},
	"L$":   {"LRD"},
	"LD$":  {"LRD"},
	"M":    {"LSL"},
	"ل.د":  {"LYD"},
	"LD":   {"LYD"},
	"DH":   {"MAD"},
	"Ar":   {"MGA"},
	"ден":  {"MKD"},
	"den":  {"MKD"},
	"Ks":   {"MMK"},
	"₮":    {"MNT"},
	"MOP$": {"MOP"},
	"UM":   {"MRU"},
	"Rf":   {"MVR"},
	"MVR":  {"MVR"},
	"K":    {"MWK", "PGK", "ZMW"},
	"Mex$": {"MXN"},
	"RM":   {"MYR"},
	"MT":   {"MZN"},
	"MTn":  {"MZN"},
	"N$":   {"NAD"},
	"₦":    {"NGN"},
	"रू":   {"NPR"},
	"NZ$":  {"NZD"},
	"$NZ":  {"NZD"},
	"ر.ع.": {"OMR"},
	"R.O":  {"OMR"},
	"B/.":  {"PAB"},
	"S/":   {"PEN"},
	"₱":    {"PHP"},
	"zł":   {"PLN"},
	"₲":    {"PYG"},
	"ر.ق":  {"QAR"},
	"QR":   {"QAR"},
	"Leu":  {"RON"},
	"Lei":  {"RON"},
	"РСД":  {"RSD"},
	"DIN":  {"RSD"},
	"₽":    {"RUB"},
	"FRw":  {"RWF"},
	"RF":   {"RWF"},
	"ر.س":  {"SAR"},
	"SAR":  {"SAR"},
	"SR":   {"SAR", "SCR"},
	"SI$":  {"SBD"},
	"ج.س":  {"SDG"},
	"LS":   {"SDG", "SYP"},
	"S$":   {"SGD"},
	"Le":   {"SLE"},
	"Sh.So": {"SOS"},
	"Sur$":  {"SRD"},
	"SSP":   {"SSP"},
	"Db":    {"STN"},
	"ل.س":   {"SYP"},
	"SP":    {"SYP"},
	"E":     {"SZL"},
	"฿":     {"THB"},
	"SM":    {"TJS"},
	"m":     {"TMT"},
	"د.ت":   {"TND"},
	"DT":    {"TND"},
	"T$":    {"TOP"},
	"PT":    {"TOP"},
	"₺":     {"TRY"},
	"TT$":   {"TTD"},
	"NT$":   {"TWD"},
	"NT":    {"TWD"},
	"TSh":   {"TZS"},
	"₴":     {"UAH"},
	"USh":   {"UGX"},
	"US$":   {"USD"},
	"U$":    {"USD"},
	"$U":    {"UYU"},
	"soʻm":  {"UZS"},
	"Bs.S":  {"VES"},
	"₫":     {"VND"},
	"VT":    {"VUV"},
	"WS$":   {"WST"},
	"SAT":   {"WST"},
	"ST":    {"WST"},
	"T":     {"WST"},
	"F.CFA": {"XAF", "XOF"},
	"EC$":   {"XCD"},
	"F":     {"XPF"},
	"R":     {"ZAR"},
	"ZK":    {"ZMW"},
	"₿":     {"BTC"},

	// Plain ISO codes accepted as scan tokens in their own right.
	"USD": {"USD"},
	"EUR": {"EUR"},
	"GBP": {"GBP"},
	"JPY": {"JPY"},
	"CAD": {"CAD"},
	"AUD": {"AUD"},
	"CHF": {"CHF"},
	"SEK": {"SEK"},
	"NOK": {"NOK"},
	"DKK": {"DKK"},
	"PLN": {"PLN"},
	"CZK": {"CZK"},
	"HUF": {"HUF"},
	"RON": {"RON"},
	"BGN": {"BGN"},
	"HRK": {"HRK"},
	"RSD": {"RSD"},
	"BAM": {"BAM"},
	"MKD": {"MKD"},
	"ALL": {"ALL"},
	"ISK": {"ISK"},
}

// codeToSymbols maps an ISO code to its display symbols; the first entry
// is the representative symbol appended to formatted amounts.
var codeToSymbols = map[string][]string{
	"AED": {"د.إ", "Dhs", "Dh"},
	"AFN": {"؋", "Af", "Afs"},
	"ALL": {"Lek"},
	"AMD": {"֏"},
	"ANG": {"ƒ", "NAƒ", "NAf"},
	"AOA": {"Kz"},
	"ARS": {"$", "Arg$"},
	"AUD": {"$", "Au$", "A$"},
	"AWG": {"Afl"},
	"AZN": {"₼"},
	"BAM": {"KM"},
	"BBD": {"$", "BB$", "BBD$", "BDS$"},
	"BDT": {"৳"},
	"BGN": {"лв", "lv"},
	"BHD": {"د.ب", "BD"},
	"BIF": {"FBu"},
	"BMD": {"$", "BD$"},
	"BND": {"$", "B$"},
	"BOB": {"Bs"},
	"BRL": {"R$"},
	"BTC": {"₿"},
	"BTN": {"Nu"},
	"BWP": {"P"},
	"BYN": {"Br"},
	"BZD": {"$", "BZ$"},
	"CAD": {"$", "CA$", "Can$", "C$"},
	"CDF": {"FC"},
	"CHF": {"₣"},
	"CLP": {"$", "CLP$"},
	"CNY": {"¥", "CN¥"},
	"COP": {"$", "Col$"},
	"CRC": {"₡"},
	"CUP": {"$", "$MN"},
	"CVE": {"Esc"},
	"CZK": {"Kč"},
	"DJF": {"Fdj"},
	"DKK": {"kr"},
	"DOP": {"$", "RD$"},
	"DZD": {"دج", "DA"},
	"EGP": {"E£", "£E", "LE"},
	"ERN": {"Nkf"},
	"ETB": {"ብር", "Br"},
	"EUR": {"€"},
	"FJD": {"$", "FJ$"},
	"GBP": {"£"},
	"GEL": {"₾"},
	"GHS": {"GH₵", "GH¢"},
	"GMD": {"D"},
	"GNF": {"FG", "Fr", "GFr"},
	"GTQ": {"Q"},
	"GYD": {"$", "G$", "GY$"},
	"HKD": {"$", "HK$", "元"},
	"HNL": {"L"},
	"HTG": {"G"},
	"HUF": {"Ft"},
	"IDR": {"Rp"},
	"ILS": {"₪"},
	"INR": {"₹"},
	"IQD": {"د.ع", "ID"},
	"IRR": {"﷼", "RI"},
	"ISK": {"kr"},
	"JMD": {"$", "J$"},
	"JOD": {"د.أ"},
	"JPY": {"¥", "円"},
	"KES": {"KSh"},
	"KGS": {"сом", "som"},
	"KHR": {"៛"},
	"KMF": {"FC"},
	"KRW": {"₩"},
	"KWD": {"د.ك", "KD"},
	"KYD": {"$", "CI$"},
	"KZT": {"₸"},
	"LAK": {"₭", "₭N"},
	"LBP": {"ل.ل", "LL"},
	"LKR": {"රු", "Rs", "Re"},
	"LRD": {"$", "L$", "LD$"},
	"LSL": {"M"},
	"LYD": {"ل.د", "LD"},
	"MAD": {"DH"},
	"MDL": {"L"},
	"MGA": {"Ar"},
	"MKD": {"ден", "den"},
	"MMK": {"Ks"},
	"MNT": {"₮"},
	"MOP": {"$", "MOP$"},
	"MRU": {"UM"},
	"MUR": {"Rs"},
	"MVR": {"Rf"},
	"MWK": {"K"},
	"MXN": {"$", "Mex$"},
	"MYR": {"RM"},
	"MZN": {"MT", "MTn"},
	"NAD": {"$", "N$"},
	"NGN": {"₦"},
	"NIO": {"$", "C$"},
	"NOK": {"kr"},
	"NPR": {"रू"},
	"NZD": {"$", "NZ$", "$NZ"},
	"OMR": {"﷼", "ر.ع.", "R.O"},
	"PAB": {"B/."},
	"PEN": {"S/"},
	"PGK": {"K"},
	"PHP": {"₱"},
	"PKR": {"Rs"},
	"PLN": {"zł"},
	"PYG": {"₲"},
	"QAR": {"ر.ق", "QR"},
	"RON": {"Leu", "Lei"},
	"RSD": {"РСД", "DIN"},
	"RUB": {"₽"},
	"RWF": {"FRw", "RF"},
	"SAR": {"ر.س", "SR"},
	"SBD": {"$", "SI$"},
	"SCR": {"SR"},
	"SDG": {"ج.س", "LS"},
	"SEK": {"kr"},
	"SGD": {"$", "S$"},
	"SLE": {"Le"},
	"SOS": {"Sh.So"},
	"SRD": {"$", "Sur$"},
	"SSP": {"SSP"},
	"STN": {"Db"},
	"SYP": {"ل.س", "SP", "LS"},
	"SZL": {"E"},
	"THB": {"฿"},
	"TJS": {"SM"},
	"TMT": {"m"},
	"TND": {"د.ت", "DT"},
	"TOP": {"T$", "PT"},
	"TRY": {"₺"},
	"TTD": {"$", "TT$"},
	"TWD": {"$", "NT$", "NT"},
	"TZS": {"TSh"},
	"UAH": {"₴"},
	"UGX": {"USh"},
	"USD": {"$", "US$", "U$"},
	"UYU": {"$", "$U"},
	"UZS": {"soʻm"},
	"VES": {"Bs.S"},
	"VND": {"₫"},
	"VUV": {"VT"},
	"WST": {"WS$", "SAT", "ST", "T"},
	"XAF": {"F.CFA"},
	"XCD": {"$", "EC$"},
	"XOF": {"F.CFA"},
	"XPF": {"F"},
	"YER": {"﷼"},
	"ZAR": {"R"},
	"ZMW": {"K", "ZK"},
}

// countryToCode maps ISO country codes to their primary currency, used by
// the locale disambiguation chain. Intentionally a short list of the
// countries the ambiguous symbols actually span.
var countryToCode = map[string]string{
	"US": "USD",
	"GB": "GBP",
	"EU": "EUR",
	"JP": "JPY",
	"CA": "CAD",
	"AU": "AUD",
	"CH": "CHF",
	"CN": "CNY",
	"IN": "INR",
	"KR": "KRW",
	"MX": "MXN",
	"BR": "BRL",
	"NZ": "NZD",
	"SE": "SEK",
	"NO": "NOK",
	"DK": "DKK",
	"IS": "ISK",
	"SG": "SGD",
	"HK": "HKD",
	"TW": "TWD",
	"AR": "ARS",
	"CL": "CLP",
	"CO": "COP",
	"NI": "NIO",
	"ET": "ETB",
	"BY": "BYN",
	"LK": "LKR",
	"MU": "MUR",
	"PK": "PKR",
	"SA": "SAR",
	"SC": "SCR",
}
