package membership

import "errors"

var (
	// ErrMembershipNotFound возвращается, когда у клиента нет членства
	ErrMembershipNotFound = errors.New("membership.client: membership not found")

	// ErrInvalidResponse возвращается при некорректном ответе MembershipService
	ErrInvalidResponse = errors.New("membership.client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("membership.client: internal error")
)
