package domain

import "time"

// WalletCard is a card the user claims to hold.
type WalletCard struct {
	ID            int64
	UserID        string
	CardID        int64
	CardName      string
	AcquiredMonth *int
	AcquiredYear  *int
	CreatedAt     time.Time
}

// WalletSubmission is the client payload for adding a wallet card.
type WalletSubmission struct {
	CardID        int64 `json:"card_id"        validate:"required,gt=0"`
	AcquiredMonth *int  `json:"acquired_month" validate:"omitempty,min=1,max=12"`
	AcquiredYear  *int  `json:"acquired_year"  validate:"omitempty,min=1950,pastyear"`
}

// Profile is everything a signed-in user owns.
type Profile struct {
	UserID    string
	Records   []Record
	Referrals []ReferralWithStats
	Wallet    []WalletCard
}
