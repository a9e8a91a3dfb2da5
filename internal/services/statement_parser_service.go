package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"parish-ledger/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

var (
	ErrStatementEmpty          = errors.New("statement contains no data rows")
	ErrStatementMissingColumns = errors.New("statement is missing required columns")
)

// Column headers accepted for each field. Banks in the wild export
// both English and Spanish headings.
var (
	dateHeaders        = []string{"date", "fecha"}
	amountHeaders      = []string{"amount", "monto", "importe"}
	descriptionHeaders = []string{"description", "descripcion", "glosa", "detalle"}
	referenceHeaders   = []string{"reference", "referencia", "nro operacion", "num operacion"}
)

var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

// Thousands-separated amount shapes. Everything else is handed to the
// decimal parser as-is after cosmetic cleanup.
var (
	commaThousandsPattern  = regexp.MustCompile(`^-?\d{1,3}(,\d{3})+(\.\d+)?$`)
	periodThousandsPattern = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+(,\d+)?$`)
)

// RowError reports a single unparseable statement row. Line numbers
// are 1-based and count the header row.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

type statementParserService struct{}

// NewStatementParser creates a parser for uploaded CSV bank statements
func NewStatementParser() StatementParserInterface {
	return &statementParserService{}
}

// Parse reads a CSV bank statement into bank rows. This is the
// fail-loud boundary: any row that cannot be parsed is reported with
// its line number and the whole statement is rejected, so the matcher
// downstream only ever sees well-formed input.
func (p *statementParserService) Parse(r io.Reader) ([]models.BankRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrStatementEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read statement header: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []models.BankRow
	var rowErrs *multierror.Error

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrs = multierror.Append(rowErrs, &RowError{Line: line, Err: err})
			continue
		}

		row, err := parseRow(record, columns)
		if err != nil {
			rowErrs = multierror.Append(rowErrs, &RowError{Line: line, Err: err})
			continue
		}
		rows = append(rows, row)
	}

	if err := rowErrs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrStatementEmpty
	}

	return rows, nil
}

// columnIndexes locates each logical field in the header row
type columnIndexes struct {
	date        int
	amount      int
	description int
	reference   int // -1 when the statement carries no reference column
}

func mapColumns(header []string) (columnIndexes, error) {
	columns := columnIndexes{date: -1, amount: -1, description: -1, reference: -1}

	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		switch {
		case matchesHeader(normalized, dateHeaders):
			columns.date = i
		case matchesHeader(normalized, amountHeaders):
			columns.amount = i
		case matchesHeader(normalized, descriptionHeaders):
			columns.description = i
		case matchesHeader(normalized, referenceHeaders):
			columns.reference = i
		}
	}

	if columns.date < 0 || columns.amount < 0 || columns.description < 0 {
		return columns, ErrStatementMissingColumns
	}
	return columns, nil
}

func matchesHeader(name string, candidates []string) bool {
	for _, candidate := range candidates {
		if name == candidate {
			return true
		}
	}
	return false
}

func parseRow(record []string, columns columnIndexes) (models.BankRow, error) {
	var row models.BankRow

	maxIndex := columns.date
	if columns.amount > maxIndex {
		maxIndex = columns.amount
	}
	if columns.description > maxIndex {
		maxIndex = columns.description
	}
	if len(record) <= maxIndex {
		return row, fmt.Errorf("expected at least %d fields, got %d", maxIndex+1, len(record))
	}

	date, err := parseDate(record[columns.date])
	if err != nil {
		return row, err
	}

	amount, err := parseAmount(record[columns.amount])
	if err != nil {
		return row, err
	}

	row.Date = date
	row.Amount = amount
	row.Description = strings.TrimSpace(record[columns.description])
	if columns.reference >= 0 && columns.reference < len(record) {
		row.Reference = strings.TrimSpace(record[columns.reference])
	}

	return row, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return models.DayOf(parsed), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

func parseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	switch {
	case commaThousandsPattern.MatchString(cleaned):
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case periodThousandsPattern.MatchString(cleaned):
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("unparseable amount %q", value)
	}
	return amount, nil
}
