package booking

import (
	"strings"

	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// LiveStatuses are the statuses that occupy a slot.
var LiveStatuses = []Status{StatusPending, StatusApproved}

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return st, nil
	}
	return "", ErrInvalidTransition
}

func (s Status) IsLive() bool {
	return s == StatusPending || s == StatusApproved
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

type transition struct {
	from Status
	to   Status
	role identity.Role
}

// transitions is the complete set of allowed status changes and who may
// make them. Anything absent is rejected.
var transitions = map[transition]struct{}{
	{StatusPending, StatusApproved, identity.RoleBarber}:     {},
	{StatusPending, StatusRejected, identity.RoleBarber}:     {},
	{StatusPending, StatusCancelled, identity.RoleCustomer}:  {},
	{StatusApproved, StatusCancelled, identity.RoleCustomer}: {},
}

func CanTransition(from, to Status, role identity.Role) error {
	if _, ok := transitions[transition{from, to, role}]; !ok {
		return ErrInvalidTransition
	}
	return nil
}

func StatusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
