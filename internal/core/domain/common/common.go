package common

import "fmt"

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

// Email is kept exactly as the caller provided it. Uniqueness and lookup are
// case-sensitive, matching the account store's exact-match queries.
type Email string

func NewEmail(rawEmail string) Email {
	return Email(rawEmail)
}
