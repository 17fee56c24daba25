package engine

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrUnknownKey is wrapped by KeyError.
var ErrUnknownKey = errors.New("unknown key")

// KeyError reports the first keystroke ParseKeys could not map.
type KeyError struct {
	Key    rune
	Offset int
}

func (e *KeyError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %q at offset %d", ErrUnknownKey.Error(), e.Key, e.Offset)
}

func (e *KeyError) Unwrap() error { return ErrUnknownKey }

var keyActions = map[rune]Action{
	'.': EnterDecimalPoint(),
	'+': SelectOperation(Add),
	'-': SelectOperation(Subtract),
	'*': SelectOperation(Multiply),
	'x': SelectOperation(Multiply),
	'×': SelectOperation(Multiply),
	'/': SelectOperation(Divide),
	'÷': SelectOperation(Divide),
	'=': Evaluate(),
	'%': Percentage(),
	'c': Clear(),
	'C': Clear(),
	'<': Delete(),
	'~': ToggleSign(),
	'±': ToggleSign(),
}

// ParseKeys maps a keystroke string such as "12+3=" to actions. Whitespace is
// ignored.
func ParseKeys(keys string) ([]Action, error) {
	actions := make([]Action, 0, len(keys))
	for offset, r := range keys {
		if unicode.IsSpace(r) {
			continue
		}
		if r >= '0' && r <= '9' {
			actions = append(actions, EnterDigit(int(r-'0')))
			continue
		}
		a, ok := keyActions[r]
		if !ok {
			return nil, &KeyError{Key: r, Offset: offset}
		}
		actions = append(actions, a)
	}
	return actions, nil
}
