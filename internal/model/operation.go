package model

import "time"

// OperationType is the direction of a shipment.
type OperationType string

const (
	OperationImport OperationType = "ithalat"
	OperationExport OperationType = "ihracat"
)

// Valid reports whether t is a known operation type.
func (t OperationType) Valid() bool {
	return t == OperationImport || t == OperationExport
}

// Operation is a tracked import/export shipment. OperationNumber is immutable.
type Operation struct {
	ID              string        `json:"id"`
	OperationNumber string        `json:"operationNumber"`
	Name            string        `json:"name"`
	Type            OperationType `json:"type"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// OperationDetail is an operation with its participants, their companies and documents.
type OperationDetail struct {
	Operation
	Participants []ParticipantDetail `json:"participants"`
}
