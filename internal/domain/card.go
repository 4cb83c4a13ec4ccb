package domain

import (
	"strings"
	"time"
)

// Card is the store row for one credit card product.
// Slug is the join key shared with the catalog.
type Card struct {
	ID                    int64
	Slug                  string
	Name                  string
	Bank                  string
	ImageLink             *string
	AcceptingApplications *bool
	ReferralBaseLink      *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// CatalogCard is one entry of the static card catalog.
type CatalogCard struct {
	Slug                  string
	Name                  string
	Bank                  string
	Image                 *string
	AcceptingApplications *bool
	AnnualFee             *float64
	Rewards               []Reward
	SignupBonus           *SignupBonus
	ApplyLink             *string
	Category              string
	Tags                  []string
	ReleaseDate           *string
}

// Reward is one reward category of a catalog card.
type Reward struct {
	Category string
	Value    float64
	Unit     string
}

// SignupBonus describes a catalog card's welcome offer.
type SignupBonus struct {
	Value            float64
	Type             string
	SpendRequirement float64
	TimeframeMonths  int
}

// CardStats holds the derived statistics of a card.
// The three averages are nil when the card has no approved records.
type CardStats struct {
	CardID                     int64
	ApprovedCount              int
	RejectedCount              int
	TotalRecords               int
	ApprovedMedianCreditScore  *int
	ApprovedMedianIncome       *int
	ApprovedMedianLengthCredit *int
}

// MergedCard is the client-facing view of a card: the catalog entry with
// store overrides and statistics applied.
type MergedCard struct {
	// CardID is the store id used for writes. Nil when the catalog entry has
	// no store row (or the store was unreachable).
	CardID                *int64
	Catalog               CatalogCard
	ImageLink             *string
	AcceptingApplications *bool
	ReferralBaseLink      *string
	Stats                 CardStats
}

// Point is an ordered pair on a scatter plot.
type Point [2]int

// CardGraphs holds the three scatter-plot series of a card.
type CardGraphs struct {
	ScoreIncomeAccepted []Point
	ScoreIncomeRejected []Point
	LengthScoreAccepted []Point
	LengthScoreRejected []Point
	IncomeLimit         []Point
}

// TrimCardSuffix removes a trailing " Card" from a card name.
func TrimCardSuffix(name string) string {
	return strings.TrimSuffix(strings.TrimSpace(name), " Card")
}
