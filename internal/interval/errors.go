package interval

import (
	"errors"
)

var (
	ErrInvalidRange = errors.New("invalid interval range")
)
