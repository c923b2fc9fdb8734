package httperr

import (
	"errors"
	"fmt"
)

// ===============================
// Validation
// ===============================

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ===============================
// Not found
// ===============================

type NotFoundError struct {
	Code string
}

func (e NotFoundError) Error() string {
	return e.Code
}

func ErrNotFound(code string) error {
	return NotFoundError{Code: code}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// ===============================
// Configuration (setup da loja, não repetir)
// ===============================

type ConfigurationError struct {
	Code string
}

func (e ConfigurationError) Error() string {
	return "configuration: " + e.Code
}

func ErrConfiguration(code string) error {
	return ConfigurationError{Code: code}
}

// ===============================
// Conflict (corrida de horário, repetível)
// ===============================

type ConflictError struct {
	Code string
}

func (e ConflictError) Error() string {
	return "conflict: " + e.Code
}

// Retryable: o cliente deve recalcular os horários e escolher outro.
func (e ConflictError) Retryable() bool {
	return true
}

func ErrConflict(code string) error {
	return ConflictError{Code: code}
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

// ===============================
// Invalid transition / forbidden
// ===============================

const CodeForbidden = "forbidden"

type InvalidTransitionError struct {
	Code string
	From string
	To   string
}

func (e InvalidTransitionError) Error() string {
	if e.From == "" && e.To == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s -> %s", e.Code, e.From, e.To)
}

func ErrInvalidTransition(from, to string) error {
	return InvalidTransitionError{Code: "invalid_transition", From: from, To: to}
}

func ErrForbidden() error {
	return InvalidTransitionError{Code: CodeForbidden}
}

func IsForbidden(err error) bool {
	var it InvalidTransitionError
	return errors.As(err, &it) && it.Code == CodeForbidden
}

// ===============================
// Capacity enforcement
// ===============================

type CapacityEnforcementError struct {
	ProfessionalIDs []uint
	Err             error
}

func (e CapacityEnforcementError) Error() string {
	return fmt.Sprintf("capacity enforcement aborted (%d professionals pending): %v", len(e.ProfessionalIDs), e.Err)
}

func (e CapacityEnforcementError) Unwrap() error {
	return e.Err
}
