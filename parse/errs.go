package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")
)

func lineErr(line int, f string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrParse, line, fmt.Sprintf(f, args...))
}
