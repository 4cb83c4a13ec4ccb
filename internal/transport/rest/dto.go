package rest

import (
	"time"

	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/internal/validation"
)

const dateLayout = "2006-01-02"

type rewardResponse struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
}

type signupBonusResponse struct {
	Value            float64 `json:"value"`
	Type             string  `json:"type"`
	SpendRequirement float64 `json:"spend_requirement"`
	TimeframeMonths  int     `json:"timeframe_months"`
}

type cardResponse struct {
	CardID                     *int64               `json:"card_id"`
	Slug                       string               `json:"slug"`
	CardName                   string               `json:"card_name"`
	Bank                       string               `json:"bank"`
	CardImageLink              *string              `json:"card_image_link"`
	AcceptingApplications      *bool                `json:"accepting_applications"`
	AnnualFee                  *float64             `json:"annual_fee"`
	Rewards                    []rewardResponse     `json:"rewards"`
	SignupBonus                *signupBonusResponse `json:"signup_bonus"`
	ApplyLink                  *string              `json:"apply_link"`
	ReferralBaseLink           *string              `json:"referral_base_link"`
	Category                   string               `json:"category,omitempty"`
	Tags                       []string             `json:"tags"`
	ReleaseDate                *string              `json:"release_date"`
	ApprovedCount              int                  `json:"approved_count"`
	RejectedCount              int                  `json:"rejected_count"`
	TotalRecords               int                  `json:"total_records"`
	ApprovedMedianCreditScore  *int                 `json:"approved_median_credit_score"`
	ApprovedMedianIncome       *int                 `json:"approved_median_income"`
	ApprovedMedianLengthCredit *int                 `json:"approved_median_length_credit"`
}

func toCardResponse(c domain.MergedCard) cardResponse {
	resp := cardResponse{
		CardID:                     c.CardID,
		Slug:                       c.Catalog.Slug,
		CardName:                   c.Catalog.Name,
		Bank:                       c.Catalog.Bank,
		CardImageLink:              c.ImageLink,
		AcceptingApplications:      c.AcceptingApplications,
		AnnualFee:                  c.Catalog.AnnualFee,
		Rewards:                    make([]rewardResponse, len(c.Catalog.Rewards)),
		ApplyLink:                  c.Catalog.ApplyLink,
		ReferralBaseLink:           c.ReferralBaseLink,
		Category:                   c.Catalog.Category,
		Tags:                       c.Catalog.Tags,
		ReleaseDate:                c.Catalog.ReleaseDate,
		ApprovedCount:              c.Stats.ApprovedCount,
		RejectedCount:              c.Stats.RejectedCount,
		TotalRecords:               c.Stats.TotalRecords,
		ApprovedMedianCreditScore:  c.Stats.ApprovedMedianCreditScore,
		ApprovedMedianIncome:       c.Stats.ApprovedMedianIncome,
		ApprovedMedianLengthCredit: c.Stats.ApprovedMedianLengthCredit,
	}
	for i, rw := range c.Catalog.Rewards {
		resp.Rewards[i] = rewardResponse{Category: rw.Category, Value: rw.Value, Unit: rw.Unit}
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if sb := c.Catalog.SignupBonus; sb != nil {
		resp.SignupBonus = &signupBonusResponse{
			Value:            sb.Value,
			Type:             sb.Type,
			SpendRequirement: sb.SpendRequirement,
			TimeframeMonths:  sb.TimeframeMonths,
		}
	}
	return resp
}

type seriesResponse struct {
	Accepted []domain.Point `json:"accepted"`
	Rejected []domain.Point `json:"rejected"`
}

type graphsResponse struct {
	CreditScoreIncome seriesResponse `json:"credit_score_income"`
	LengthCreditScore seriesResponse `json:"length_credit_score"`
	IncomeLimit       []domain.Point `json:"income_limit"`
}

func toGraphsResponse(g domain.CardGraphs) graphsResponse {
	return graphsResponse{
		CreditScoreIncome: seriesResponse{Accepted: g.ScoreIncomeAccepted, Rejected: g.ScoreIncomeRejected},
		LengthCreditScore: seriesResponse{Accepted: g.LengthScoreAccepted, Rejected: g.LengthScoreRejected},
		IncomeLimit:       g.IncomeLimit,
	}
}

type recordResponse struct {
	RecordID            int64     `json:"record_id"`
	CardID              int64     `json:"card_id"`
	CardName            string    `json:"card_name,omitempty"`
	CreditScore         int       `json:"credit_score"`
	CreditScoreSource   int       `json:"credit_score_source"`
	Result              bool      `json:"result"`
	ListedIncome        int       `json:"listed_income"`
	LengthCredit        int       `json:"length_credit"`
	StartingCreditLimit *int      `json:"starting_credit_limit"`
	ReasonDenied        *string   `json:"reason_denied"`
	DateApplied         string    `json:"date_applied"`
	BankCustomer        bool      `json:"bank_customer"`
	Inquiries3          *int      `json:"inquiries_3"`
	Inquiries12         *int      `json:"inquiries_12"`
	Inquiries24         *int      `json:"inquiries_24"`
	SubmitDatetime      time.Time `json:"submit_datetime"`
	AdminReview         bool      `json:"admin_review"`
	Active              bool      `json:"active"`
	SubmitterID         string    `json:"submitter_id,omitempty"`
	SubmitterIP         string    `json:"submitter_ip,omitempty"`
}

func toRecordResponse(r domain.Record) recordResponse {
	return recordResponse{
		RecordID:            r.ID,
		CardID:              r.CardID,
		CardName:            r.CardName,
		CreditScore:         r.CreditScore,
		CreditScoreSource:   int(r.CreditScoreSource),
		Result:              r.Result,
		ListedIncome:        r.ListedIncome,
		LengthCredit:        r.LengthCredit,
		StartingCreditLimit: r.StartingCreditLimit,
		ReasonDenied:        r.ReasonDenied,
		DateApplied:         r.DateApplied.Format(dateLayout),
		BankCustomer:        r.BankCustomer,
		Inquiries3:          r.Inquiries3,
		Inquiries12:         r.Inquiries12,
		Inquiries24:         r.Inquiries24,
		SubmitDatetime:      r.SubmitDatetime,
		AdminReview:         r.AdminReview,
		Active:              r.Active,
	}
}

// toAdminRecordResponse also exposes who submitted the record and from where.
func toAdminRecordResponse(r domain.Record) recordResponse {
	resp := toRecordResponse(r)
	resp.SubmitterID = r.SubmitterID
	resp.SubmitterIP = r.SubmitterIP
	return resp
}

func toRecordResponses(records []domain.Record, conv func(domain.Record) recordResponse) []recordResponse {
	out := make([]recordResponse, len(records))
	for i, r := range records {
		out[i] = conv(r)
	}
	return out
}

type ruleResponse struct {
	Field     string `json:"field"`
	Type      string `json:"type"`
	Required  bool   `json:"required"`
	Min       *int   `json:"min,omitempty"`
	Max       *int   `json:"max,omitempty"`
	MinLength *int   `json:"min_length,omitempty"`
	MaxLength *int   `json:"max_length,omitempty"`
	Format    string `json:"format,omitempty"`
	NotFuture bool   `json:"not_future,omitempty"`
}

func toRuleResponses(rules []validation.Rule) []ruleResponse {
	out := make([]ruleResponse, len(rules))
	for i, r := range rules {
		out[i] = ruleResponse(r)
	}
	return out
}

type referralResponse struct {
	ReferralID     int64     `json:"referral_id"`
	CardID         int64     `json:"card_id"`
	CardName       string    `json:"card_name,omitempty"`
	ReferralLink   string    `json:"referral_link"`
	Status         string    `json:"status"`
	AdminApproved  bool      `json:"admin_approved"`
	SubmitDatetime time.Time `json:"submit_datetime"`
	Impressions    *int      `json:"impressions,omitempty"`
	Clicks         *int      `json:"clicks,omitempty"`
	SubmitterID    string    `json:"submitter_id,omitempty"`
	SubmitterIP    string    `json:"submitter_ip,omitempty"`
}

func toReferralResponse(r domain.Referral) referralResponse {
	return referralResponse{
		ReferralID:     r.ID,
		CardID:         r.CardID,
		CardName:       r.CardName,
		ReferralLink:   r.Link,
		Status:         r.Status().String(),
		AdminApproved:  r.AdminApproved,
		SubmitDatetime: r.SubmitDatetime,
	}
}

func toReferralWithStatsResponse(r domain.Referral, st domain.ReferralStats) referralResponse {
	resp := toReferralResponse(r)
	resp.Impressions = &st.Impressions
	resp.Clicks = &st.Clicks
	return resp
}

func toAdminReferralResponse(r domain.Referral) referralResponse {
	resp := toReferralResponse(r)
	resp.SubmitterID = r.SubmitterID
	resp.SubmitterIP = r.SubmitterIP
	return resp
}

// randomReferralResponse is the public view of a referral: no owner data.
type randomReferralResponse struct {
	ReferralID   int64  `json:"referral_id"`
	CardID       int64  `json:"card_id"`
	ReferralLink string `json:"referral_link"`
}

type openReferralResponse struct {
	CardID   int64  `json:"card_id"`
	CardName string `json:"card_name"`
}

type walletResponse struct {
	WalletID      int64     `json:"wallet_id"`
	CardID        int64     `json:"card_id"`
	CardName      string    `json:"card_name"`
	AcquiredMonth *int      `json:"acquired_month"`
	AcquiredYear  *int      `json:"acquired_year"`
	CreatedAt     time.Time `json:"created_at"`
}

func toWalletResponse(w domain.WalletCard) walletResponse {
	return walletResponse{
		WalletID:      w.ID,
		CardID:        w.CardID,
		CardName:      w.CardName,
		AcquiredMonth: w.AcquiredMonth,
		AcquiredYear:  w.AcquiredYear,
		CreatedAt:     w.CreatedAt,
	}
}

func toWalletResponses(cards []domain.WalletCard) []walletResponse {
	out := make([]walletResponse, len(cards))
	for i, c := range cards {
		out[i] = toWalletResponse(c)
	}
	return out
}

type auditEntryResponse struct {
	AuditID    int64          `json:"audit_id"`
	AdminID    string         `json:"admin_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   int64          `json:"entity_id"`
	Details    map[string]any `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`
}

func toAuditEntryResponse(e domain.AuditEntry) auditEntryResponse {
	return auditEntryResponse{
		AuditID:    e.ID,
		AdminID:    e.AdminID,
		Action:     e.Action.String(),
		EntityType: e.EntityType.String(),
		EntityID:   e.EntityID,
		Details:    e.Details,
		CreatedAt:  e.CreatedAt,
	}
}
