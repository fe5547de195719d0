package user

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Optional distinguishes a value that was supplied (possibly empty) from one
// that was not supplied at all.
type Optional[T any] struct {
	Value   T
	Present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

// Or returns the supplied value, or fallback when none was supplied.
func (o Optional[T]) Or(fallback T) T {
	if o.Present {
		return o.Value
	}
	return fallback
}

// Input is the sparse, string-typed parameter set of a create or update
// request. Params counts every query parameter on the request, recognised or
// not.
type Input struct {
	Name      Optional[string]
	Email     Optional[string]
	Birthdate Optional[string]
	AddressID Optional[string]
	Params    int
}

// Draft holds the effective field values of a record before validation.
type Draft struct {
	Name      string `validate:"required"`
	Email     string `validate:"required"`
	Birthdate string `validate:"required"`
	AddressID string `validate:"required"`
}

// NewDraft takes the supplied values as-is; absent fields stay empty.
func NewDraft(in Input) Draft {
	return Draft{
		Name:      in.Name.Value,
		Email:     in.Email.Value,
		Birthdate: in.Birthdate.Value,
		AddressID: in.AddressID.Value,
	}
}

// Merge overlays the supplied fields of in onto current. Fields absent from
// in carry forward from current.
func Merge(current User, in Input) Draft {
	return Draft{
		Name:      in.Name.Or(current.Name),
		Email:     in.Email.Or(current.Email),
		Birthdate: in.Birthdate.Or(current.Birthdate),
		AddressID: in.AddressID.Or(strconv.Itoa(current.AddressID)),
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "user_email", func(fl validator.FieldLevel) bool {
		return IsEmailValid(fl.Field().String())
	})
	mustRegister(v, "birthdate", func(fl validator.FieldLevel) bool {
		return IsDateValid(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Build checks d in order (presence, email, birthdate) and returns the user
// to persist, with email lowercased. ID is left zero.
func (d Draft) Build() (User, error) {
	if err := validate.Struct(d); err != nil {
		return User{}, ErrInvalidInput
	}
	addressID, err := strconv.Atoi(d.AddressID)
	if err != nil {
		return User{}, ErrInvalidInput
	}
	if err := validate.Var(d.Email, "user_email"); err != nil {
		return User{}, ErrInvalidEmail
	}
	if err := validate.Var(d.Birthdate, "birthdate"); err != nil {
		return User{}, ErrInvalidDate
	}

	return User{
		Name:      d.Name,
		Email:     strings.ToLower(d.Email),
		Birthdate: d.Birthdate,
		AddressID: addressID,
	}, nil
}
