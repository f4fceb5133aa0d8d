package showdown

import "strings"

// MoveCategory distinguishes physical, special, and status moves.
type MoveCategory int

const (
	CategoryPhysical MoveCategory = iota
	CategorySpecial
	CategoryStatus
)

func (c MoveCategory) String() string {
	switch c {
	case CategoryPhysical:
		return "physical"
	case CategorySpecial:
		return "special"
	default:
		return "status"
	}
}

// Move is one usable move. ID is the sim's canonical lowercase
// no-punctuation form ("stealthrock", "suckerpunch").
type Move struct {
	ID        string
	Name      string
	Type      Type
	Category  MoveCategory
	BasePower int
	Priority  int
}

// IsStatus reports whether the move deals no direct damage.
func (m Move) IsStatus() bool { return m.Category == CategoryStatus }

// MoveID canonicalizes a display name: lowercase, punctuation and
// whitespace stripped ("Sucker Punch" -> "suckerpunch").
func MoveID(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MoveByID looks up a move in the embedded movedex. Unknown moves come back
// as a generic 80 BP physical move of no type, so observed opponent moves
// never break scoring.
func MoveByID(id string) Move {
	if m, ok := movedex[id]; ok {
		return m
	}
	return Move{ID: id, Name: id, Type: TypeNone, Category: CategoryPhysical, BasePower: 80}
}

// MoveByName looks up a move by display name.
func MoveByName(name string) Move {
	return MoveByID(MoveID(name))
}
