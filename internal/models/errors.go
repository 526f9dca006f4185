package models

import "errors"

// ErrInvalidInput marks request payloads that fail semantic validation
// beyond what binding tags can express. Handlers map it to a 400.
var ErrInvalidInput = errors.New("invalid input")
