package employee

import "errors"

var (
	ErrEmployeeConflict = errors.New("employee write affected no rows")
	ErrInvalidRole      = errors.New("role must be owner, manager or employee")
	ErrOwnerRequiresDev = errors.New("only a developer session may create an owner")
)
