package port

import "errors"

var ErrUnauthorized = errors.New("unauthorized")
