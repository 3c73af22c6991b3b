package domain

import (
	"errors"
	"fmt"
)

// Kind names one deployment and the record type it serves.
type Kind string

const (
	KindCars  Kind = "cars"
	KindUsers Kind = "users"
)

var (
	ErrUnknownKind    = errors.New("unknown kind")
	ErrInvalidPayload = errors.New("invalid payload")
)

func IsValidKind(value string) bool {
	switch Kind(value) {
	case KindCars, KindUsers:
		return true
	default:
		return false
	}
}

func ParseKind(value string) (Kind, error) {
	if !IsValidKind(value) {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, value)
	}
	return Kind(value), nil
}

// Singular is the record name used in event types and routing keys.
func (k Kind) Singular() string {
	switch k {
	case KindCars:
		return "car"
	case KindUsers:
		return "user"
	default:
		return string(k)
	}
}

// Collection is the capitalized plural used in GraphQL and REST names, e.g. getAllCars.
func (k Kind) Collection() string {
	switch k {
	case KindCars:
		return "Cars"
	case KindUsers:
		return "Users"
	default:
		return string(k)
	}
}

func (k Kind) CreatedEvent() string {
	return k.Singular() + ".created"
}

func (k Kind) DefaultPort() string {
	switch k {
	case KindUsers:
		return "8000"
	default:
		return "5000"
	}
}

func (k Kind) Welcome() string {
	switch k {
	case KindCars:
		return "Welcome to the Car Inventory API"
	case KindUsers:
		return "Welcome to the User Directory API"
	default:
		return "Welcome"
	}
}
