package domain

import "time"

// ReferralStatus is the approval state of a referral.
type ReferralStatus string

const (
	ReferralStatusPending  ReferralStatus = "pending"
	ReferralStatusApproved ReferralStatus = "approved"
)

func (s ReferralStatus) String() string { return string(s) }

func (s ReferralStatus) IsValid() bool {
	switch s {
	case ReferralStatusPending, ReferralStatusApproved:
		return true
	}
	return false
}

// ReferralEvent is an engagement event type.
type ReferralEvent string

const (
	ReferralEventImpression ReferralEvent = "impression"
	ReferralEventClick      ReferralEvent = "click"
)

func (e ReferralEvent) String() string { return string(e) }

func (e ReferralEvent) IsValid() bool {
	switch e {
	case ReferralEventImpression, ReferralEventClick:
		return true
	}
	return false
}

// Referral is a user's referral link for a card.
type Referral struct {
	ID             int64
	CardID         int64
	CardName       string
	SubmitterID    string
	Link           string
	SubmitDatetime time.Time
	SubmitterIP    string
	AdminApproved  bool
}

// Status derives the state from the approval flag.
func (r Referral) Status() ReferralStatus {
	if r.AdminApproved {
		return ReferralStatusApproved
	}
	return ReferralStatusPending
}

// ReferralStats is the aggregated engagement of one referral.
type ReferralStats struct {
	ReferralID  int64
	Impressions int
	Clicks      int
}

// ReferralWithStats pairs a referral with its engagement counts.
type ReferralWithStats struct {
	Referral
	Stats ReferralStats
}

// ReferralSubmission is the client payload for a new referral.
type ReferralSubmission struct {
	CardID       int64  `json:"card_id"       validate:"required,gt=0"`
	ReferralLink string `json:"referral_link" validate:"required,min=3,max=250"`
}

// OpenReferral is a card the user may still submit a referral for.
type OpenReferral struct {
	CardID   int64
	CardName string
}

// ReferralFilter narrows the admin referral listing.
type ReferralFilter struct {
	Status *ReferralStatus
	Limit  int
	Offset int
}
