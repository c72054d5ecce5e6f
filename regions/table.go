package regions

// regionSpec rows come from the App Store storefront list. Order matters:
// the derived currency and symbol indexes keep the first region seen for
// each currency, so this table must stay in its original order.
type regionSpec struct {
	code     string
	currency string
	symbol   string
}

var regionSpecs = []regionSpec{
	{code: "ad", currency: "EUR", symbol: "€"},
	{code: "ae", currency: "AED", symbol: "د.إ"},
	{code: "ag", currency: "XCD", symbol: "EC$"},
	{code: "al", currency: "ALL", symbol: "L"},
	{code: "am", currency: "AMD", symbol: "֏"},
	{code: "ao", currency: "AOA", symbol: "Kz"},
	{code: "ba", currency: "BAM", symbol: "KM"},
	{code: "ar", currency: "ARS", symbol: "$"},
	{code: "at", currency: "EUR", symbol: "€"},
	{code: "au", currency: "AUD", symbol: "A$"},
	{code: "bb", currency: "BBD", symbol: "Bds$"},
	{code: "bd", currency: "BDT", symbol: "৳"},
	{code: "be", currency: "EUR", symbol: "€"},
	{code: "bf", currency: "XOF", symbol: "CFA"},
	{code: "bg", currency: "BGN", symbol: "лв"},
	{code: "bh", currency: "BHD", symbol: "ب.د"},
	{code: "bj", currency: "XOF", symbol: "CFA"},
	{code: "bn", currency: "BND", symbol: "B$"},
	{code: "bo", currency: "BOB", symbol: "Bs"},
	{code: "br", currency: "BRL", symbol: "R$"},
	{code: "bs", currency: "BSD", symbol: "$"},
	{code: "bt", currency: "BTN", symbol: "Nu."},
	{code: "bw", currency: "BWP", symbol: "P"},
	{code: "bz", currency: "BZD", symbol: "BZ$"},
	{code: "ca", currency: "CAD", symbol: "CA$"},
	{code: "cl", currency: "CLP", symbol: "$"},
	{code: "cn", currency: "CNY", symbol: "¥"},
	{code: "co", currency: "COP", symbol: "$"},
	{code: "cr", currency: "CRC", symbol: "₡"},
	{code: "cv", currency: "CVE", symbol: "Esc"},
	{code: "ch", currency: "CHF", symbol: "CHF"},
	{code: "cy", currency: "EUR", symbol: "€"},
	{code: "cz", currency: "CZK", symbol: "Kč"},
	{code: "de", currency: "EUR", symbol: "€"},
	{code: "dk", currency: "DKK", symbol: "kr"},
	{code: "dm", currency: "XCD", symbol: "EC$"},
	{code: "do", currency: "DOP", symbol: "RD$"},
	{code: "dz", currency: "DZD", symbol: "د.ج"},
	{code: "ec", currency: "USD", symbol: "$"},
	{code: "ee", currency: "EUR", symbol: "€"},
	{code: "es", currency: "EUR", symbol: "€"},
	{code: "fi", currency: "EUR", symbol: "€"},
	{code: "fj", currency: "FJD", symbol: "FJ$"},
	{code: "fm", currency: "USD", symbol: "$"},
	{code: "fr", currency: "EUR", symbol: "€"},
	{code: "ga", currency: "XAF", symbol: "FCFA"},
	{code: "gb", currency: "GBP", symbol: "£"},
	{code: "gd", currency: "XCD", symbol: "EC$"},
	{code: "ge", currency: "GEL", symbol: "₾"},
	{code: "gh", currency: "GHS", symbol: "₵"},
	{code: "gm", currency: "GMD", symbol: "D"},
	{code: "gn", currency: "GNF", symbol: "FG"},
	{code: "gr", currency: "EUR", symbol: "€"},
	{code: "gt", currency: "GTQ", symbol: "Q"},
	{code: "gw", currency: "XOF", symbol: "CFA"},
	{code: "gy", currency: "GYD", symbol: "G$"},
	{code: "hk", currency: "HKD", symbol: "HK$"},
	{code: "hn", currency: "HNL", symbol: "L"},
	{code: "hr", currency: "EUR", symbol: "€"},
	{code: "hu", currency: "HUF", symbol: "Ft"},
	{code: "id", currency: "IDR", symbol: "Rp"},
	{code: "ie", currency: "EUR", symbol: "€"},
	{code: "il", currency: "ILS", symbol: "₪"},
	{code: "in", currency: "INR", symbol: "₹"},
	{code: "is", currency: "ISK", symbol: "kr"},
	{code: "it", currency: "EUR", symbol: "€"},
	{code: "jm", currency: "JMD", symbol: "J$"},
	{code: "jo", currency: "JOD", symbol: "د.ا"},
	{code: "jp", currency: "JPY", symbol: "¥"},
	{code: "ke", currency: "KES", symbol: "KSh"},
	{code: "kg", currency: "KGS", symbol: "c"},
	{code: "kh", currency: "KHR", symbol: "៛"},
	{code: "ki", currency: "AUD", symbol: "A$"},
	{code: "kn", currency: "XCD", symbol: "EC$"},
	{code: "kr", currency: "KRW", symbol: "₩"},
	{code: "kw", currency: "KWD", symbol: "د.ك"},
	{code: "kz", currency: "KZT", symbol: "₸"},
	{code: "la", currency: "LAK", symbol: "₭"},
	{code: "lb", currency: "LBP", symbol: "ل.ل"},
	{code: "lc", currency: "XCD", symbol: "EC$"},
	{code: "lk", currency: "LKR", symbol: "₨"},
	{code: "ls", currency: "LSL", symbol: "L"},
	{code: "lr", currency: "LRD", symbol: "$"},
	{code: "lt", currency: "EUR", symbol: "€"},
	{code: "lu", currency: "EUR", symbol: "€"},
	{code: "lv", currency: "EUR", symbol: "€"},
	{code: "mg", currency: "MGA", symbol: "Ar"},
	{code: "mw", currency: "MWK", symbol: "MK"},
	{code: "my", currency: "MYR", symbol: "RM"},
	{code: "mv", currency: "MVR", symbol: "Rf"},
	{code: "ml", currency: "XOF", symbol: "CFA"},
	{code: "mt", currency: "EUR", symbol: "€"},
	{code: "mr", currency: "MRU", symbol: "UM"},
	{code: "mu", currency: "MUR", symbol: "₨"},
	{code: "mx", currency: "MXN", symbol: "MX$"},
	{code: "md", currency: "MDL", symbol: "L"},
	{code: "mn", currency: "MNT", symbol: "₮"},
	{code: "me", currency: "EUR", symbol: "€"},
	{code: "ma", currency: "MAD", symbol: "د.م"},
	{code: "mo", currency: "MOP", symbol: "MOP$"},
	{code: "mz", currency: "MZN", symbol: "MT"},
	{code: "na", currency: "NAD", symbol: "N$"},
	{code: "nr", currency: "AUD", symbol: "A$"},
	{code: "np", currency: "NPR", symbol: "₨"},
	{code: "nl", currency: "EUR", symbol: "€"},
	{code: "nz", currency: "NZD", symbol: "NZ$"},
	{code: "ni", currency: "NIO", symbol: "C$"},
	{code: "ne", currency: "XOF", symbol: "CFA"},
	{code: "ng", currency: "NGN", symbol: "₦"},
	{code: "mk", currency: "MKD", symbol: "ден"},
	{code: "no", currency: "NOK", symbol: "kr"},
	{code: "om", currency: "OMR", symbol: "ر.ع"},
	{code: "pa", currency: "PAB", symbol: "B/."},
	{code: "pg", currency: "PGK", symbol: "K"},
	{code: "pe", currency: "PEN", symbol: "S/."},
	{code: "ph", currency: "PHP", symbol: "₱"},
	{code: "pl", currency: "PLN", symbol: "zł"},
	{code: "pt", currency: "EUR", symbol: "€"},
	{code: "pw", currency: "USD", symbol: "$"},
	{code: "py", currency: "PYG", symbol: "₲"},
	{code: "qa", currency: "QAR", symbol: "ر.ق"},
	{code: "ro", currency: "RON", symbol: "lei"},
	{code: "rs", currency: "RSD", symbol: "дин"},
	{code: "rw", currency: "RWF", symbol: "FRw"},
	{code: "sa", currency: "SAR", symbol: "﷼"},
	{code: "sb", currency: "SBD", symbol: "SI$"},
	{code: "sc", currency: "SCR", symbol: "₨"},
	{code: "se", currency: "SEK", symbol: "kr"},
	{code: "sg", currency: "SGD", symbol: "S$"},
	{code: "si", currency: "EUR", symbol: "€"},
	{code: "sk", currency: "EUR", symbol: "€"},
	{code: "sl", currency: "SLE", symbol: "Le"},
	{code: "sm", currency: "EUR", symbol: "€"},
	{code: "st", currency: "STN", symbol: "Db"},
	{code: "sn", currency: "XOF", symbol: "CFA"},
	{code: "sr", currency: "SRD", symbol: "SR$"},
	{code: "sv", currency: "USD", symbol: "$"},
	{code: "th", currency: "THB", symbol: "฿"},
	{code: "tj", currency: "TJS", symbol: "SM"},
	{code: "tl", currency: "USD", symbol: "$"},
	{code: "tn", currency: "TND", symbol: "د.ت"},
	{code: "to", currency: "TOP", symbol: "T$"},
	{code: "tr", currency: "TRY", symbol: "₺"},
	{code: "tt", currency: "TTD", symbol: "TT$"},
	{code: "tv", currency: "AUD", symbol: "A$"},
	{code: "tw", currency: "TWD", symbol: "NT$"},
	{code: "tz", currency: "TZS", symbol: "TSh"},
	{code: "ug", currency: "UGX", symbol: "USh"},
	{code: "ua", currency: "UAH", symbol: "₴"},
	{code: "us", currency: "USD", symbol: "$"},
	{code: "uy", currency: "UYU", symbol: "$U"},
	{code: "uz", currency: "UZS", symbol: "so'm"},
	{code: "vc", currency: "XCD", symbol: "EC$"},
	{code: "ws", currency: "WST", symbol: "WS$"},
	{code: "vu", currency: "VUV", symbol: "VT"},
	{code: "vn", currency: "VND", symbol: "₫"},
	{code: "za", currency: "ZAR", symbol: "R"},
	{code: "zm", currency: "ZMW", symbol: "K"},
	{code: "zw", currency: "ZWL", symbol: "Z$"},
}
