// Package service orchestrates the statement pipeline: read, sniff,
// extract, normalize, classify and build journal rows.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/humblebees/bankjournal/internal/domain/categorization"
	"github.com/humblebees/bankjournal/internal/domain/ledger"
	"github.com/humblebees/bankjournal/internal/domain/statement/parser"
	"github.com/humblebees/bankjournal/internal/domain/statement/sniffer"
	"github.com/humblebees/bankjournal/internal/domain/statement/source"
)

// ErrNoTransactions marks a statement whose text yielded no transaction
// rows. Batch processing records it and moves on.
var ErrNoTransactions = errors.New("no transactions found in statement")

// Confidence scores accompany every extracted statement so consumers can
// flag low-trust fields instead of silently trusting them.
type Confidence struct {
	Bank          float64
	AccountHolder float64
	Transactions  float64
}

// StatementContext is the metadata sniffed from the statement header.
type StatementContext struct {
	Bank          sniffer.Bank
	AccountHolder string
	Confidence    Confidence
}

// ClassifiedTransaction pairs a normalized transaction with its category.
type ClassifiedTransaction struct {
	parser.Transaction
	Category categorization.Category
}

// Statement is the full processing result for one input file.
type Statement struct {
	Path       string
	Context    StatementContext
	BankLedger string
	Classified []ClassifiedTransaction
	Entries    []ledger.JournalEntry
}

// BatchResult collects the outcome of a multi-statement run. Failures are
// recorded per statement; a batch never aborts because one input is bad.
type BatchResult struct {
	JobID      string
	Statements []*Statement
	Errors     []string
}

// Service wires the pipeline stages together.
type Service struct {
	source        source.Source
	detector      *sniffer.Detector
	classifier    *categorization.Classifier
	ledgers       ledger.Ledgers
	bankOverrides map[string]string
	logger        *slog.Logger
}

// NewService builds a pipeline over the given source and rule set.
func NewService(src source.Source, rules categorization.RuleSet, ledgers ledger.Ledgers, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		source:     src,
		detector:   sniffer.NewDetector(),
		classifier: categorization.NewClassifier(rules),
		ledgers:    ledgers,
		logger:     logger,
	}
}

// OverrideBankLedgers replaces the voucher ledger name for specific bank
// codes (lower case), on top of the built-in names.
func (s *Service) OverrideBankLedgers(overrides map[string]string) {
	s.bankOverrides = overrides
}

// ProcessStatement runs the full pipeline over one statement file.
func (s *Service) ProcessStatement(ctx context.Context, path string) (*Statement, error) {
	header, err := s.source.HeaderLines(ctx, path)
	if err != nil {
		return nil, err
	}
	lines, err := s.source.Lines(ctx, path)
	if err != nil {
		return nil, err
	}

	bank, bankConf := s.detector.Detect(header)
	holder := sniffer.AccountHolder(header)
	holderConf := 0.7
	if holder == sniffer.UnknownHolder {
		holderConf = 0.3
	}

	blocks := parser.ExtractBlocks(lines)
	normalizer := parser.NewNormalizer()
	txns := normalizer.Normalize(blocks)

	txnConf := 1.0
	if len(txns) == 0 {
		txnConf = 0.0
	}

	stmt := &Statement{
		Path: path,
		Context: StatementContext{
			Bank:          bank,
			AccountHolder: holder,
			Confidence: Confidence{
				Bank:          bankConf,
				AccountHolder: holderConf,
				Transactions:  txnConf,
			},
		},
	}

	if len(txns) == 0 {
		return stmt, fmt.Errorf("%s: %w", path, ErrNoTransactions)
	}

	ledgers := s.ledgers
	if name, ok := BankLedger(bank); ok {
		ledgers.Bank = name
	}
	if name, ok := s.bankOverrides[strings.ToLower(string(bank))]; ok {
		ledgers.Bank = name
	}
	stmt.BankLedger = ledgers.Bank

	for _, txn := range txns {
		cat := s.classifier.Classify(txn)
		stmt.Classified = append(stmt.Classified, ClassifiedTransaction{Transaction: txn, Category: cat})
		stmt.Entries = append(stmt.Entries, ledger.BuildJournalEntry(txn, cat, ledgers))
	}

	s.logger.Info("statement processed",
		slog.String("path", path),
		slog.String("bank", string(bank)),
		slog.String("holder", holder),
		slog.Int("transactions", len(txns)))

	return stmt, nil
}

// ProcessBatch runs every statement independently. A panic or error in one
// statement is recorded and the batch continues.
func (s *Service) ProcessBatch(ctx context.Context, paths []string) BatchResult {
	result := BatchResult{JobID: uuid.NewString()}
	logger := s.logger.With(slog.String("job_id", result.JobID))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", path, err))
			break
		}
		stmt, err := s.processOne(ctx, path)
		if err != nil {
			logger.Warn("statement failed", slog.String("path", path), slog.Any("error", err))
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Statements = append(result.Statements, stmt)
	}

	logger.Info("batch finished",
		slog.Int("processed", len(result.Statements)),
		slog.Int("failed", len(result.Errors)))
	return result
}

func (s *Service) processOne(ctx context.Context, path string) (stmt *Statement, err error) {
	defer func() {
		if r := recover(); r != nil {
			stmt = nil
			err = fmt.Errorf("%s: panic: %v", path, r)
		}
	}()
	return s.ProcessStatement(ctx, path)
}

// bankLedgers maps the sniffed bank to the ledger name its vouchers use.
var bankLedgers = map[sniffer.Bank]string{
	sniffer.BankHDFC: "HDFC Bank",
	sniffer.BankSBI:  "SBI Bank",
	sniffer.BankJKB:  "J&K Bank",
}

// BankLedger resolves the bank-specific ledger name, reporting whether the
// bank has one. Unknown banks fall back to the configured default.
func BankLedger(bank sniffer.Bank) (string, bool) {
	name, ok := bankLedgers[bank]
	return name, ok
}
