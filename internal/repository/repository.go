package repository

import "errors"

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) inside this directory.
// Missing rows are reported with sql.ErrNoRows; constraint violations with the
// errors below so services never inspect driver specific codes.

var (
	// ErrDuplicate reports a unique constraint violation.
	ErrDuplicate = errors.New("repository: duplicate key")
	// ErrReferenced reports a foreign key violation: the referenced row is missing
	// or the row is still referenced.
	ErrReferenced = errors.New("repository: foreign key violation")
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

// SortOrder is the direction of a list query.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)
