package bank

import "github.com/silentmoney/silent-money/internal/model"

// OtherBankID is the synthetic profile used when no known bank matches.
// It carries no sender aliases and is excluded from text matching.
const OtherBankID = "other"

// DefaultCurrency is used when a transaction resolves to the synthetic
// "other" profile.
const DefaultCurrency = "ETB"

// supportedBanks is the built-in catalog, in matching priority order.
// Order matters: MatchText returns the first hit, so institutions whose
// aliases could be shadowed by a longer name elsewhere in the table must
// come first.
var supportedBanks = []model.BankProfile{
	{ID: "cbe", Name: "Commercial Bank of Ethiopia", SenderIDs: []string{"CBE", "CBETH", "Commercial Bank"}, Currency: "ETB"},
	{ID: "dashen", Name: "Dashen Bank", SenderIDs: []string{"Dashen", "DASHEN"}, Currency: "ETB"},
	{ID: "awash", Name: "Awash Bank", SenderIDs: []string{"Awash", "AWASH"}, Currency: "ETB"},
	{ID: "abyssinia", Name: "Bank of Abyssinia", SenderIDs: []string{"BoA", "ABYSSINIA"}, Currency: "ETB"},
	{ID: "nib", Name: "Nib International Bank", SenderIDs: []string{"NIB", "NIBInternational"}, Currency: "ETB"},
	{ID: "abay", Name: "Abay Bank", SenderIDs: []string{"ABAY", "Abay"}, Currency: "ETB"},
	{ID: "addis", Name: "Addis International Bank", SenderIDs: []string{"ADDIS", "Addis"}, Currency: "ETB"},
	{ID: "amhara", Name: "Amhara Bank", SenderIDs: []string{"AMHARA", "Amhara"}, Currency: "ETB"},
	{ID: "berhan", Name: "Berhan Bank", SenderIDs: []string{"BERHAN", "Berhan"}, Currency: "ETB"},
	{ID: "bunna", Name: "Bunna Bank", SenderIDs: []string{"BUNNA", "Bunna"}, Currency: "ETB"},
	{ID: "coop", Name: "Cooperative Bank of Oromia", SenderIDs: []string{"CBO", "Coopbank", "COOP"}, Currency: "ETB"},
	{ID: "enat", Name: "Enat Bank", SenderIDs: []string{"ENAT", "Enat"}, Currency: "ETB"},
	{ID: "global", Name: "Global Bank Ethiopia", SenderIDs: []string{"GLOBAL", "Global", "DEGA"}, Currency: "ETB"},
	{ID: "lion", Name: "Lion International Bank", SenderIDs: []string{"LION", "Lion", "ANBESA"}, Currency: "ETB"},
	{ID: "oromia", Name: "Oromia International Bank", SenderIDs: []string{"OIB", "Oromia"}, Currency: "ETB"},
	{ID: "hibret", Name: "Hibret Bank", SenderIDs: []string{"HIBRET", "Hibret", "UNITED"}, Currency: "ETB"},
	{ID: "wegagen", Name: "Wegagen Bank", SenderIDs: []string{"WEGAGEN", "Wegagen"}, Currency: "ETB"},
	{ID: "zemen", Name: "Zemen Bank", SenderIDs: []string{"ZEMEN", "Zemen"}, Currency: "ETB"},
	{ID: "dbe", Name: "Development Bank of Ethiopia", SenderIDs: []string{"DBE"}, Currency: "ETB"},
	{ID: "zamzam", Name: "ZamZam Bank", SenderIDs: []string{"ZAMZAM", "ZamZam"}, Currency: "ETB"},
	{ID: "hijra", Name: "Hijra Bank", SenderIDs: []string{"HIJRA", "Hijra"}, Currency: "ETB"},
	{ID: "siinqee", Name: "Siinqee Bank", SenderIDs: []string{"SIINQEE", "Siinqee"}, Currency: "ETB"},
	{ID: "shabelle", Name: "Shabelle Bank", SenderIDs: []string{"SHABELLE", "Shabelle"}, Currency: "ETB"},
	{ID: "ahadu", Name: "Ahadu Bank", SenderIDs: []string{"AHADU", "Ahadu"}, Currency: "ETB"},
	{ID: "goh", Name: "Goh Betoch Bank", SenderIDs: []string{"GOH", "Goh"}, Currency: "ETB"},
	{ID: "tsedey", Name: "Tsedey Bank", SenderIDs: []string{"TSEDEY", "Tsedey"}, Currency: "ETB"},
	{ID: "gadaa", Name: "Gadaa Bank", SenderIDs: []string{"GADAA", "Gadaa"}, Currency: "ETB"},
	{ID: "rammis", Name: "Rammis Bank", SenderIDs: []string{"RAMMIS", "Rammis"}, Currency: "ETB"},
	{ID: OtherBankID, Name: "Other Bank", SenderIDs: []string{}, Currency: DefaultCurrency},
}
