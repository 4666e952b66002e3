package chat

import "strings"

// Separator joins the parts of a derived room id. Raw identifiers may not contain it.
const Separator = "|"

// RoomID identifies a room. It is always derived by ResolveRoomID, never generated.
type RoomID string

func (id RoomID) String() string { return string(id) }

// Parts splits a derived id back into its context key and sorted participants.
func (id RoomID) Parts() (contextKey, first, second string, ok bool) {
	parts := strings.Split(string(id), Separator)
	switch len(parts) {
	case 2:
		first, second = parts[0], parts[1]
	case 3:
		contextKey, first, second = parts[0], parts[1], parts[2]
		if contextKey == "" {
			return "", "", "", false
		}
	default:
		return "", "", "", false
	}
	if first == "" || second == "" || first >= second {
		return "", "", "", false
	}
	return contextKey, first, second, true
}

// ResolveRoomID computes the canonical room id for two participants and an optional
// context key. Argument order does not matter.
func ResolveRoomID(a, b, contextKey string) (RoomID, error) {
	first, second, err := SortParticipants(a, b)
	if err != nil {
		return "", err
	}
	contextKey = strings.TrimSpace(contextKey)
	if strings.Contains(contextKey, Separator) {
		return "", ErrInvalidIdentifier
	}
	if contextKey == "" {
		return RoomID(first + Separator + second), nil
	}
	return RoomID(contextKey + Separator + first + Separator + second), nil
}

// SortParticipants validates two participant ids and returns them in canonical order.
func SortParticipants(a, b string) (string, string, error) {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return "", "", ErrParticipantRequired
	}
	if a == b {
		return "", "", ErrSameParticipant
	}
	if strings.Contains(a, Separator) || strings.Contains(b, Separator) {
		return "", "", ErrInvalidIdentifier
	}
	if b < a {
		a, b = b, a
	}
	return a, b, nil
}
