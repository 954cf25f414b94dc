package valueobjects

import "fmt"

// Severity grades a ticket from 1 (cosmetic) to 5 (device unusable).
type Severity int

const (
	SeverityMinimal  Severity = 1
	SeverityLow      Severity = 2
	SeverityModerate Severity = 3
	SeverityHigh     Severity = 4
	SeverityCritical Severity = 5
)

func (s Severity) Int() int {
	return int(s)
}

func (s Severity) IsValid() bool {
	return s >= SeverityMinimal && s <= SeverityCritical
}

func NewSeverity(v int) (Severity, error) {
	s := Severity(v)
	if !s.IsValid() {
		return 0, fmt.Errorf("invalid severity: %d (must be 1-5)", v)
	}
	return s, nil
}
