package errors

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrMissingOrderID    = errors.New("order id is required")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidOrder      = errors.New("invalid order")
	ErrOrderClaimed      = errors.New("order already claimed")
	ErrNoOffer           = errors.New("no order on offer")
	ErrDriverOffline     = errors.New("driver is offline")
)
