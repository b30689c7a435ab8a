package parser

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// StatementGenerator generates realistic statement text for tests using
// gofakeit. Generated statements keep a consistent running balance, so the
// normalizer's direction inference can be checked against the generator's
// own bookkeeping.
type StatementGenerator struct {
	faker   *gofakeit.Faker
	balance decimal.Decimal
}

// NewStatementGenerator creates a generator with a specific seed for
// reproducibility.
func NewStatementGenerator(seed int64) *StatementGenerator {
	faker := gofakeit.New(seed)
	return &StatementGenerator{
		faker:   faker,
		balance: decimal.NewFromInt(int64(faker.Number(10_000, 500_000))),
	}
}

// GeneratedLine is one statement line plus the truth the generator knows
// about it.
type GeneratedLine struct {
	Text      string
	Amount    decimal.Decimal
	Balance   decimal.Decimal
	Direction Direction
}

// OpeningLine renders a brought-forward line carrying the current balance.
func (g *StatementGenerator) OpeningLine() string {
	return fmt.Sprintf("B/F %s Cr", formatAmount(g.balance))
}

// OpeningBalance reports the balance the statement starts from.
func (g *StatementGenerator) OpeningBalance() decimal.Decimal {
	return g.balance
}

// TransactionLine generates one dated transaction line and advances the
// running balance.
func (g *StatementGenerator) TransactionLine() GeneratedLine {
	amount := decimal.NewFromInt(int64(g.faker.Number(100, 99_999))).
		Add(decimal.NewFromInt(int64(g.faker.Number(0, 99))).Div(decimal.NewFromInt(100)))

	direction := DirectionDebit
	if g.faker.Bool() {
		direction = DirectionCredit
	}
	if direction == DirectionDebit && amount.GreaterThan(g.balance) {
		direction = DirectionCredit
	}

	if direction == DirectionCredit {
		g.balance = g.balance.Add(amount)
	} else {
		g.balance = g.balance.Sub(amount)
	}

	date := fmt.Sprintf("%02d/%02d/%d", g.faker.Number(1, 28), g.faker.Number(1, 12), g.faker.Number(2021, 2025))
	desc := g.description(direction)

	return GeneratedLine{
		Text:      fmt.Sprintf("%s %s %s %s", date, desc, formatAmount(amount), formatAmount(g.balance)),
		Amount:    amount,
		Balance:   g.balance,
		Direction: direction,
	}
}

// Statement renders a full statement: opening line plus count transaction
// lines, returning the text lines and the per-line truth.
func (g *StatementGenerator) Statement(count int) ([]string, []GeneratedLine) {
	lines := []string{g.OpeningLine()}
	truth := make([]GeneratedLine, 0, count)
	for i := 0; i < count; i++ {
		gl := g.TransactionLine()
		lines = append(lines, gl.Text)
		truth = append(truth, gl)
	}
	return lines, truth
}

func (g *StatementGenerator) description(direction Direction) string {
	name := strings.ToUpper(g.faker.LastName())
	if direction == DirectionCredit {
		return fmt.Sprintf("NEFT CR %s %s", g.faker.LetterN(4), name)
	}
	switch g.faker.Number(0, 2) {
	case 0:
		return fmt.Sprintf("UPI/%d/%s", g.faker.Number(100_000, 999_999), name)
	case 1:
		return fmt.Sprintf("POS %s STORE", name)
	default:
		return fmt.Sprintf("IMPS TRF TO %s", name)
	}
}

// formatAmount renders an amount with thousands separators the way
// statement text carries them.
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")
	var out []byte
	for i, c := range []byte(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out) + "." + frac
}
