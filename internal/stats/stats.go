// Package stats aggregates approval records into per-card statistics and
// scatter-plot series. Only active, admin-reviewed records are counted.
package stats

import (
	"math"

	"github.com/creditodds/creditodds-api/internal/domain"
)

// Summarize computes the statistics of cardID. Records of other cards and
// records that do not count in stats are ignored. The averages are the
// arithmetic means over approved records rounded half away from zero, and
// stay nil when there are no approved records.
func Summarize(cardID int64, records []domain.Record) domain.CardStats {
	s := domain.CardStats{CardID: cardID}

	var score, income, length int64
	for _, r := range records {
		if r.CardID != cardID || !r.CountsInStats() {
			continue
		}
		if !r.Result {
			s.RejectedCount++
			continue
		}
		s.ApprovedCount++
		score += int64(r.CreditScore)
		income += int64(r.ListedIncome)
		length += int64(r.LengthCredit)
	}
	s.TotalRecords = s.ApprovedCount + s.RejectedCount

	if s.ApprovedCount > 0 {
		s.ApprovedMedianCreditScore = mean(score, s.ApprovedCount)
		s.ApprovedMedianIncome = mean(income, s.ApprovedCount)
		s.ApprovedMedianLengthCredit = mean(length, s.ApprovedCount)
	}
	return s
}

// mean must only be called with n > 0.
func mean(sum int64, n int) *int {
	v := int(math.Round(float64(sum) / float64(n)))
	return &v
}

// Empty returns zeroed statistics for a card without data.
func Empty(cardID int64) domain.CardStats {
	return domain.CardStats{CardID: cardID}
}

// BuildGraphs partitions the counted records into the three chart series:
// credit score vs income and credit length vs credit score, each split by
// result, and income vs starting limit over records that have a limit.
// Every series is non-nil.
func BuildGraphs(records []domain.Record) domain.CardGraphs {
	g := domain.CardGraphs{
		ScoreIncomeAccepted: []domain.Point{},
		ScoreIncomeRejected: []domain.Point{},
		LengthScoreAccepted: []domain.Point{},
		LengthScoreRejected: []domain.Point{},
		IncomeLimit:         []domain.Point{},
	}

	for _, r := range records {
		if !r.CountsInStats() {
			continue
		}

		scoreIncome := domain.Point{r.CreditScore, r.ListedIncome}
		lengthScore := domain.Point{r.LengthCredit, r.CreditScore}
		if r.Result {
			g.ScoreIncomeAccepted = append(g.ScoreIncomeAccepted, scoreIncome)
			g.LengthScoreAccepted = append(g.LengthScoreAccepted, lengthScore)
		} else {
			g.ScoreIncomeRejected = append(g.ScoreIncomeRejected, scoreIncome)
			g.LengthScoreRejected = append(g.LengthScoreRejected, lengthScore)
		}

		if r.StartingCreditLimit != nil {
			g.IncomeLimit = append(g.IncomeLimit, domain.Point{r.ListedIncome, *r.StartingCreditLimit})
		}
	}
	return g
}
