package domain

import (
	"strconv"
	"strings"
)

// ParseAmount coerces a user-entered budget field to an integer. Non-numeric
// or empty input yields 0.
func ParseAmount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// TotalBudget derives the trip total from the three user-entered line items
// plus the parsed cost of both transport legs. Inputs are raw strings as
// they arrive from the budget form.
func TotalBudget(accommodation, food, other, goLeg, returnLeg string) int {
	return ParseAmount(accommodation) +
		ParseAmount(food) +
		ParseAmount(other) +
		ParseTransportCost(goLeg) +
		ParseTransportCost(returnLeg)
}

// RecomputeBudget refreshes the derived TotalBudget from the schedule's own
// line items and transport legs. Called after every budget-affecting
// mutation and again when the save snapshot is computed.
func (s *Schedule) RecomputeBudget() {
	s.TotalBudget = s.Accommodation + s.Food + s.Other +
		ParseTransportCost(s.GoTransport) +
		ParseTransportCost(s.ReturnTransport)
}
