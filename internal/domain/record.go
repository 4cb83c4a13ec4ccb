package domain

import "time"

// CreditScoreSource identifies the bureau or model a credit score came from.
type CreditScoreSource int

const (
	CreditScoreSourceFICO CreditScoreSource = iota
	CreditScoreSourceVantage
	CreditScoreSourceExperian
	CreditScoreSourceEquifax
	CreditScoreSourceTransUnion
)

var creditScoreSourceNames = [...]string{"fico", "vantagescore", "experian", "equifax", "transunion"}

func (s CreditScoreSource) String() string {
	if !s.IsValid() {
		return "unknown"
	}
	return creditScoreSourceNames[s]
}

func (s CreditScoreSource) IsValid() bool {
	return s >= CreditScoreSourceFICO && s <= CreditScoreSourceTransUnion
}

// Record is one user-submitted application outcome.
type Record struct {
	ID                  int64
	CardID              int64
	CardName            string
	SubmitterID         string
	CreditScore         int
	CreditScoreSource   CreditScoreSource
	Result              bool
	ListedIncome        int
	LengthCredit        int
	StartingCreditLimit *int
	ReasonDenied        *string
	DateApplied         time.Time
	BankCustomer        bool
	Inquiries3          *int
	Inquiries12         *int
	Inquiries24         *int
	SubmitDatetime      time.Time
	SubmitterIP         string
	AdminReview         bool
	Active              bool
}

// CountsInStats reports whether the record contributes to public statistics.
func (r Record) CountsInStats() bool {
	return r.Active && r.AdminReview
}

// NormalizeOutcome keeps exactly one of StartingCreditLimit and ReasonDenied,
// selected by Result.
func (r *Record) NormalizeOutcome() {
	if r.Result {
		r.ReasonDenied = nil
	} else {
		r.StartingCreditLimit = nil
	}
}

// RecordSubmission is the client payload for a new record.
// The validate tags are the single source of the record decision table.
type RecordSubmission struct {
	CardID              int64   `json:"card_id"               validate:"required,gt=0"`
	CreditScore         *int    `json:"credit_score"          validate:"required,min=300,max=850"`
	CreditScoreSource   *int    `json:"credit_score_source"   validate:"omitempty,min=0,max=4"`
	Result              *bool   `json:"result"                validate:"required"`
	ListedIncome        *int    `json:"listed_income"         validate:"required,min=0,max=1000000"`
	LengthCredit        *int    `json:"length_credit"         validate:"required,min=0,max=100"`
	StartingCreditLimit *int    `json:"starting_credit_limit" validate:"omitempty,min=0,max=1000000"`
	ReasonDenied        *string `json:"reason_denied"         validate:"omitempty,max=254"`
	DateApplied         string  `json:"date_applied"          validate:"required,datetime=2006-01-02,notfuture"`
	BankCustomer        *bool   `json:"bank_customer"         validate:"required"`
	Inquiries3          *int    `json:"inquiries_3"           validate:"omitempty,min=0,max=50"`
	Inquiries12         *int    `json:"inquiries_12"          validate:"omitempty,min=0,max=50"`
	Inquiries24         *int    `json:"inquiries_24"          validate:"omitempty,min=0,max=50"`
}

// RecordFilter narrows the admin record listing.
type RecordFilter struct {
	CardID   *int64
	Reviewed *bool
	Limit    int
	Offset   int
}
