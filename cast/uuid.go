package cast

import "github.com/google/uuid"

var _ Converter[uuid.UUID] = UUIDConverter{}

// UUIDConverter converts strings in any form accepted by [uuid.Parse] and
// UUID values to [uuid.UUID].
type UUIDConverter struct{}

// Convert converts v to uuid.UUID.
func (UUIDConverter) Convert(v any) (uuid.UUID, error) {
	value := ValueOf(v)

	switch value.kind {
	case KindString:
		id, err := uuid.Parse(value.s)
		if err != nil {
			return uuid.Nil, errMalformed(err)
		}
		return id, nil
	case KindUUID:
		return value.id, nil
	default:
		return uuid.Nil, errUnsupported[uuid.UUID](value)
	}
}
