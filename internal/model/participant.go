package model

import (
	"strings"
	"time"
)

// Role is the part a company plays in one operation.
type Role string

const (
	RoleSupplier Role = "tedarikci"
	RoleBuyer    Role = "alici"
	RoleCustomer Role = "musteri"
)

// Roles lists the accepted roles in display order.
var Roles = []Role{RoleSupplier, RoleBuyer, RoleCustomer}

// ParseRole lower-cases s and checks it against Roles.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Roles {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// Participant binds one operation to one global company with a role.
// (OperationID, GlobalCompanyID, Role) is unique.
type Participant struct {
	ID              string    `json:"id"`
	OperationID     string    `json:"operationId"`
	GlobalCompanyID string    `json:"globalCompanyId"`
	Role            Role      `json:"role"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ParticipantDetail carries what folder derivation and cascades need: the live
// operation number, company name and the owned documents.
type ParticipantDetail struct {
	Participant
	Operation     *Operation     `json:"operation,omitempty"`
	GlobalCompany *GlobalCompany `json:"globalCompany"`
	Documents     []DocumentView `json:"documents,omitempty"`
	DocumentCount int            `json:"documentCount"`
}
