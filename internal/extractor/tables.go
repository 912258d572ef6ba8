package extractor

import (
	"regexp"

	"github.com/aayushkuntal/piepay-server/internal/model"
)

// bankTokens is the ordered bank detection table. Detection scans it top to
// bottom and keeps the first token found as a substring of the offer text, so
// a token must precede any token it contains (IDFC FIRST before IDFC).
var bankTokens = []model.BankName{
	model.BankIDFCFirst,
	model.BankIDFC,
	model.BankAxis,
	model.BankHDFC,
	model.BankICICI,
	model.BankSBI,
	model.BankKotak,
	model.BankIndusInd,
	model.BankFederal,
	model.BankYes,
	model.BankRBL,
	model.BankCiti,
	model.BankHSBC,
	model.BankAmex,
	model.BankBOB,
}

// instrumentTokens maps offer-text substrings to instrument tags. All entries
// are checked; every tag whose token appears is collected.
var instrumentTokens = []struct {
	tokens     []string
	instrument model.PaymentInstrument
}{
	{[]string{"CREDIT CARD"}, model.InstrumentCredit},
	{[]string{"DEBIT CARD"}, model.InstrumentDebit},
	{[]string{"EMI"}, model.InstrumentEMI},
	{[]string{"UPI"}, model.InstrumentUPI},
	{[]string{"NET BANKING", "NETBANKING"}, model.InstrumentNetBanking},
}

// percentPattern matches "<number>%" with an optional decimal fraction.
var percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

// flatPatterns are tried in priority order; the first match supplies the flat
// discount amount.
var flatPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)FLAT\s*₹?\s*(\d+)`),
	regexp.MustCompile(`(?i)UP TO\s*₹?\s*(\d+)`),
	regexp.MustCompile(`(?i)₹?\s*(\d+)\s*CASHBACK`),
}
