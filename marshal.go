package intx

import "fmt"

// MarshalText implements encoding.TextMarshaler, per the teacher's
// u128.go pattern of delegating straight to String.
func (u UInt256) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *UInt256) UnmarshalText(text []byte) error {
	v, err := FromString256(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u UInt256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *UInt256) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := FromString256(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Format implements fmt.Formatter so %d, %x, and friends behave, per the
// teacher's u128.go (which forwards to math/big for the same reason).
func (u UInt256) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		fmt.Fprintf(f, formatHexVerb(verb), hexDigitsUInt256(u))
	default:
		fmt.Fprint(f, u.String())
	}
}

func (u UInt512) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *UInt512) UnmarshalText(text []byte) error {
	v, err := FromString512(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u UInt512) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *UInt512) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := FromString512(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u UInt512) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		fmt.Fprintf(f, formatHexVerb(verb), hexDigitsUInt512(u))
	default:
		fmt.Fprint(f, u.String())
	}
}

func formatHexVerb(verb rune) string {
	if verb == 'X' {
		return "%X"
	}
	return "%x"
}

func hexDigitsUInt256(u UInt256) []byte {
	b := u.BigEndianBytes()
	return trimLeadingZeroBytes(b[:])
}

func hexDigitsUInt512(u UInt512) []byte {
	b := u.BigEndianBytes()
	return trimLeadingZeroBytes(b[:])
}

func trimLeadingZeroBytes(b []byte) []byte {
	i := 0
	for i < len(b)-1 && b[i] == 0 {
		i++
	}
	return b[i:]
}
