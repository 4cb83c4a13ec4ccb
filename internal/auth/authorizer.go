package auth

// Strategy is one independent signal that can grant admin rights.
type Strategy interface {
	Name() string
	Grants(subject string, claims map[string]any) bool
}

// ClaimStrategy grants when the named custom claim is boolean true.
type ClaimStrategy struct {
	Claim string
}

func (s ClaimStrategy) Name() string { return "claim:" + s.Claim }

func (s ClaimStrategy) Grants(_ string, claims map[string]any) bool {
	v, ok := claims[s.Claim].(bool)
	return ok && v
}

// AllowlistStrategy grants to a fixed set of subjects.
type AllowlistStrategy struct {
	subjects map[string]struct{}
}

// NewAllowlistStrategy builds an allowlist. Empty ids are ignored.
func NewAllowlistStrategy(subjects []string) AllowlistStrategy {
	set := make(map[string]struct{}, len(subjects))
	for _, s := range subjects {
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return AllowlistStrategy{subjects: set}
}

func (s AllowlistStrategy) Name() string { return "allowlist" }

func (s AllowlistStrategy) Grants(subject string, _ map[string]any) bool {
	_, ok := s.subjects[subject]
	return ok
}

// Authorizer evaluates admin strategies in order; the first grant wins.
type Authorizer struct {
	strategies []Strategy
}

// NewAuthorizer creates an Authorizer. With no strategies nobody is admin.
func NewAuthorizer(strategies ...Strategy) *Authorizer {
	return &Authorizer{strategies: strategies}
}

// IsAuthorized reports whether subject holds admin rights.
func (a *Authorizer) IsAuthorized(subject string, claims map[string]any) bool {
	_, ok := a.GrantedBy(subject, claims)
	return ok
}

// GrantedBy returns the name of the strategy that granted admin rights.
func (a *Authorizer) GrantedBy(subject string, claims map[string]any) (string, bool) {
	if subject == "" {
		return "", false
	}
	for _, s := range a.strategies {
		if s.Grants(subject, claims) {
			return s.Name(), true
		}
	}
	return "", false
}
