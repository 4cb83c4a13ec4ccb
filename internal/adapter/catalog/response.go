package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/creditodds/creditodds-api/internal/domain"
)

// apiCard is one card in the published catalog document.
type apiCard struct {
	Slug                  string          `json:"slug"`
	CardName              string          `json:"card_name"`
	Bank                  string          `json:"bank"`
	Image                 *string         `json:"image"`
	AcceptingApplications *bool           `json:"accepting_applications"`
	AnnualFee             *float64        `json:"annual_fee"`
	Rewards               []apiReward     `json:"rewards"`
	SignupBonus           *apiSignupBonus `json:"signup_bonus"`
	ApplyLink             *string         `json:"apply_link"`
	Category              string          `json:"category"`
	Tags                  []string        `json:"tags"`
	ReleaseDate           *string         `json:"release_date"`
}

type apiReward struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
}

type apiSignupBonus struct {
	Value            float64 `json:"value"`
	Type             string  `json:"type"`
	SpendRequirement float64 `json:"spend_requirement"`
	TimeframeMonths  int     `json:"timeframe_months"`
}

// decodeDocument accepts either a bare array of cards or {"cards": [...]}.
func decodeDocument(body []byte) ([]apiCard, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty catalog document")
	}

	if trimmed[0] == '[' {
		var cards []apiCard
		if err := json.Unmarshal(trimmed, &cards); err != nil {
			return nil, fmt.Errorf("decode card array: %w", err)
		}
		return cards, nil
	}

	var doc struct {
		Cards []apiCard `json:"cards"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decode card document: %w", err)
	}
	if doc.Cards == nil {
		return nil, fmt.Errorf("catalog document has no cards field")
	}
	return doc.Cards, nil
}

// mapCards converts the document entries, skipping entries without a name.
func mapCards(in []apiCard) []domain.CatalogCard {
	out := make([]domain.CatalogCard, 0, len(in))
	for _, c := range in {
		if c.CardName == "" {
			continue
		}
		card := domain.CatalogCard{
			Slug:                  c.Slug,
			Name:                  c.CardName,
			Bank:                  c.Bank,
			Image:                 c.Image,
			AcceptingApplications: c.AcceptingApplications,
			AnnualFee:             c.AnnualFee,
			Rewards:               make([]domain.Reward, 0, len(c.Rewards)),
			ApplyLink:             c.ApplyLink,
			Category:              c.Category,
			Tags:                  c.Tags,
			ReleaseDate:           c.ReleaseDate,
		}
		for _, r := range c.Rewards {
			card.Rewards = append(card.Rewards, domain.Reward{Category: r.Category, Value: r.Value, Unit: r.Unit})
		}
		if c.SignupBonus != nil {
			card.SignupBonus = &domain.SignupBonus{
				Value:            c.SignupBonus.Value,
				Type:             c.SignupBonus.Type,
				SpendRequirement: c.SignupBonus.SpendRequirement,
				TimeframeMonths:  c.SignupBonus.TimeframeMonths,
			}
		}
		if card.Tags == nil {
			card.Tags = []string{}
		}
		out = append(out, card)
	}
	return out
}
