package normalize

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vkarag/oebooks/pkg/ledger"
)

// Shape is the detected variant of an upstream record. Detection order
// matters: a canonical record may still carry legacy column names, so
// ShapeCanonical is always checked first.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeCanonical
	ShapeRawRow
)

const (
	placeholderClient      = "Unknown client"
	placeholderDescription = "No description"
)

type Normalizer struct {
	now func() time.Time
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		now: time.Now,
	}
}

// NormalizeBatch converts every upstream item into exactly one transaction.
// Items are never dropped and no input can fail the batch.
func (n *Normalizer) NormalizeBatch(
	ctx context.Context,
	items []any,
) []*ledger.Transaction {
	transactions := make([]*ledger.Transaction, 0, len(items))

	for _, item := range items {
		transactions = append(transactions, n.Normalize(ctx, item))
	}

	return transactions
}

func (n *Normalizer) Normalize(
	ctx context.Context,
	item any,
) *ledger.Transaction {
	fields, ok := item.(map[string]any)
	if !ok {
		return n.placeholder(ctx, item)
	}

	switch n.DetectShape(fields) {
	case ShapeCanonical:
		return n.fromCanonical(fields)
	case ShapeRawRow:
		return n.fromRawRow(fields)
	default:
		return n.placeholder(ctx, item)
	}
}

func (n *Normalizer) DetectShape(fields map[string]any) Shape {
	if hasKeys(fields, "id") && hasKeys(fields, "type") && hasKeys(fields, "status") {
		return ShapeCanonical
	}

	if firstKey(fields, rawRowMarkers...) != "" {
		return ShapeRawRow
	}

	return ShapeUnknown
}

// Spreadsheet-style column names produced by the automation backend. The
// sheet headers arrive either as exported English labels or as the Greek
// originals, depending on which backend scenario emitted the row.
var (
	rawRowMarkers = []string{
		"Gross Amount", "grossAmount", "Συνολική Αξία",
		"MARK", "ΜΑΡΚ",
		"Sync Status", "syncStatus",
		"Client Name", "Πελάτης",
	}

	colDate        = []string{"Date", "date", "Ημερομηνία"}
	colClient      = []string{"Client Name", "clientName", "Client", "Πελάτης"}
	colDescription = []string{"Description", "description", "Περιγραφή"}
	colNet         = []string{"Net Amount", "netAmount", "Καθαρή Αξία"}
	colVat         = []string{"VAT Amount", "vatAmount", "ΦΠΑ"}
	colGross       = []string{"Gross Amount", "grossAmount", "Συνολική Αξία"}
	colAFM         = []string{"AFM", "afm", "ΑΦΜ"}
	colMark        = []string{"MARK", "mark", "ΜΑΡΚ"}
	colInvoice     = []string{"Invoice Link", "invoiceLink"}
	colType        = []string{"Type", "type", "Είδος"}
	colSyncStatus  = []string{"Sync Status", "syncStatus"}
)

func (n *Normalizer) fromCanonical(fields map[string]any) *ledger.Transaction {
	tx := &ledger.Transaction{
		ID:          coerceString(fields["id"]),
		Date:        n.NormalizeDate(coerceString(fields["date"])),
		ClientName:  stringOr(coerceString(fields["clientName"]), placeholderClient),
		Description: stringOr(coerceString(fields["description"]), placeholderDescription),
		Amount:      coerceAmount(fields["amount"]),
		VatAmount:   coerceAmount(fields["vatAmount"]),
		GrossAmount: coerceAmount(fields["grossAmount"]),
		AFM:         coerceString(fields["afm"]),
		Mark:        coerceString(fields["mark"]),
		InvoiceLink: coerceString(fields["invoiceLink"]),
		Type:        parseType(coerceString(fields["type"])),
		Status:      parseStatus(coerceString(fields["status"])),
	}

	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	return tx
}

func (n *Normalizer) fromRawRow(fields map[string]any) *ledger.Transaction {
	mark := coerceString(pick(fields, colMark))

	return &ledger.Transaction{
		ID:          uuid.NewString(),
		Date:        n.NormalizeDate(coerceString(pick(fields, colDate))),
		ClientName:  stringOr(coerceString(pick(fields, colClient)), placeholderClient),
		Description: stringOr(coerceString(pick(fields, colDescription)), placeholderDescription),
		Amount:      coerceAmount(pick(fields, colNet)),
		VatAmount:   coerceAmount(pick(fields, colVat)),
		GrossAmount: coerceAmount(pick(fields, colGross)),
		AFM:         coerceString(pick(fields, colAFM)),
		Mark:        mark,
		InvoiceLink: coerceString(pick(fields, colInvoice)),
		Type:        parseType(coerceString(pick(fields, colType))),
		Status:      inferStatus(mark, coerceString(pick(fields, colSyncStatus))),
	}
}

// placeholder produces the safety net for payloads no predicate claimed.
// The raw payload is embedded in the description so nothing is silently
// lost; the record stays editable in manual review.
func (n *Normalizer) placeholder(ctx context.Context, item any) *ledger.Transaction {
	serialized, err := json.Marshal(item)
	if err != nil {
		serialized = []byte(spew.Sdump(item))
	}

	zerolog.Ctx(ctx).Warn().
		Str("payload", string(serialized)).
		Msg("unrecognized record shape, keeping as placeholder")

	return &ledger.Transaction{
		ID:          uuid.NewString(),
		Date:        n.today(),
		ClientName:  placeholderClient,
		Description: fmt.Sprintf("Unrecognized record: %s", serialized),
		Amount:      decimal.Zero,
		VatAmount:   decimal.Zero,
		GrossAmount: decimal.Zero,
		Type:        ledger.TypeExpense,
		Status:      ledger.StatusManualReview,
	}
}

var isoDateRegex = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)

// NormalizeDate reduces the upstream date zoo to canonical YYYY-MM-DD.
// Slash dates default to M/D/YYYY; a first component above 12 can only be
// a day, flipping the reading to D/M/YYYY. Anything unparseable falls back
// to today instead of failing the record.
func (n *Normalizer) NormalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return n.today()
	}

	if matches := isoDateRegex.FindStringSubmatch(raw); len(matches) == 2 {
		return matches[1]
	}

	if parts := strings.Split(raw, "/"); len(parts) == 3 {
		first, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		second, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))

		if err1 == nil && err2 == nil && err3 == nil {
			month, day := first, second
			if first > 12 {
				month, day = second, first
			}

			date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			if int(date.Month()) == month {
				return date.Format(time.DateOnly)
			}
		}
	}

	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"02-01-2006",
		"Jan 2, 2006",
		"2 Jan 2006",
		time.RFC1123,
	} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format(time.DateOnly)
		}
	}

	return n.today()
}

func (n *Normalizer) today() string {
	return n.now().Format(time.DateOnly)
}

// inferStatus applies the conservative registration bias: without strong
// evidence of an official registry mark, the record stays in manual review.
func inferStatus(mark, syncStatus string) ledger.TransactionStatus {
	if len(mark) > 5 {
		return ledger.StatusOfficial
	}

	switch strings.ToUpper(strings.TrimSpace(syncStatus)) {
	case "OFFICIAL":
		return ledger.StatusOfficial
	case "MANUAL_REVIEW_REQUIRED":
		return ledger.StatusManualReview
	default:
		return ledger.StatusManualReview
	}
}

func parseType(raw string) ledger.TransactionType {
	lower := strings.ToLower(strings.TrimSpace(raw))

	if strings.Contains(lower, "income") || strings.Contains(lower, "έσοδ") {
		return ledger.TypeIncome
	}

	return ledger.TypeExpense
}

func parseStatus(raw string) ledger.TransactionStatus {
	if strings.EqualFold(strings.TrimSpace(raw), string(ledger.StatusOfficial)) {
		return ledger.StatusOfficial
	}

	return ledger.StatusManualReview
}

// coerceAmount turns whatever the backend sent into a non-negative decimal.
// Malformed values become zero; this is intentionally lossy so a bad cell
// never fails the batch.
func coerceAmount(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(v).Abs()
	case int:
		return decimal.NewFromInt(int64(v)).Abs()
	case int64:
		return decimal.NewFromInt(v).Abs()
	case json.Number:
		return coerceAmount(string(v))
	case string:
		cleaned := strings.NewReplacer("\u20ac", "", " ", "", "\u00a0", "").Replace(v)

		// European formatting: 1.234,56
		if strings.Contains(cleaned, ",") {
			if strings.Contains(cleaned, ".") {
				cleaned = strings.ReplaceAll(cleaned, ".", "")
			}
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		}

		parsed, err := decimal.NewFromString(cleaned)
		if err != nil {
			return decimal.Zero
		}

		return parsed.Abs()
	default:
		return decimal.Zero
	}
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

func hasKeys(fields map[string]any, keys ...string) bool {
	for _, key := range keys {
		if _, ok := fields[key]; !ok {
			return false
		}
	}

	return true
}

func firstKey(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		if _, ok := fields[key]; ok {
			return key
		}
	}

	return ""
}

func pick(fields map[string]any, keys []string) any {
	if key := firstKey(fields, keys...); key != "" {
		return fields[key]
	}

	return nil
}
