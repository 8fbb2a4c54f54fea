package model

// Kind distinguishes the two transaction directions the server knows about.
// The value doubles as the API path segment (POST /{account}/{kind}).
type Kind string

const (
	KindCredit Kind = "credit"
	KindDebit  Kind = "debit"
)

// Transaction is a single persisted ledger row. Debits arrive from the
// server with a negative amount; display code negates them back.
type Transaction struct {
	RowID       int64  `json:"rowid"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// LedgerSnapshot is the wholesale per-account view returned by
// GET /{account}. It is always replaced as a unit, never patched, so the
// balance and the row lists stay consistent with a single server response.
type LedgerSnapshot struct {
	Balance int64         `json:"balance"`
	Credits []Transaction `json:"credits"`
	Debits  []Transaction `json:"debits"`
}

// CronSpec is the payload of a recurring transaction: what to book and on
// which schedule. Amounts are signed cents; debits are negative.
type CronSpec struct {
	Amount      int64    `json:"amount"`
	Description string   `json:"description"`
	Schedule    Schedule `json:"schedule"`
}

// Cron is a persisted recurring-transaction definition.
type Cron struct {
	RowID int64    `json:"rowid"`
	Spec  CronSpec `json:"spec"`
}
