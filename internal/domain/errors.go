package domain

import "errors"

var (
	// ErrNotFound is returned by update/delete/get targeting a missing id.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateInvoice is returned when an invoice already exists for the
	// request. Surfaced to the admin verbatim.
	ErrDuplicateInvoice = errors.New("an invoice already exists for this request")
)
