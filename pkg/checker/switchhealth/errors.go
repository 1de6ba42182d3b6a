package switchhealth

import "errors"

var (
	ErrValueAbsent = errors.New("value not available")
	ErrNotInteger  = errors.New("value is not an integer")
)
