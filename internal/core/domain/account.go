package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is one entry in the chart of accounts. The journal engine only
// reads accounts; maintenance of the directory belongs to another system.
type Account struct {
	AccountID   int64       `json:"accountID"`   // Primary key
	Code        string      `json:"code"`        // Unique user-facing code (e.g. "1010")
	Name        string      `json:"name"`        // Display name (e.g. "Cash")
	AccountType AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	IsActive    bool        `json:"isActive"`
	AuditFields
}
