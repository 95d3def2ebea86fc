package cast

import "github.com/spf13/cast"

var _ Converter[string] = StringConverter{}

// StringConverter converts values to string.
//
// Booleans render as "True" and "False". Everything else uses its native
// textual representation.
type StringConverter struct{}

// Convert converts v to string.
func (StringConverter) Convert(v any) (string, error) {
	value := ValueOf(v)

	switch value.kind {
	case KindBoolean:
		if value.b {
			return "True", nil
		}
		return "False", nil
	case KindString:
		return value.s, nil
	case KindChar:
		return Char(value.i).String(), nil
	}

	if value.null {
		return "", errUnsupported[string](value)
	}

	s, err := cast.ToStringE(value.raw)
	if err != nil {
		return "", errUnsupported[string](value)
	}

	return s, nil
}
