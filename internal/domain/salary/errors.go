package salary

import "errors"

var ErrInvalidWindow = errors.New("invalid accounting window")
