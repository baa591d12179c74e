// Package icon enumerates the icon identifiers attached to static content and
// chat options. Identifiers are resolved to assets by whatever renders them;
// no decision logic looks at them.
package icon

import (
	"fmt"
	"strings"
)

// ID names an icon.
type ID string

const (
	None        ID = ""
	Brain       ID = "brain"
	Heart       ID = "heart"
	Users       ID = "users"
	UserCheck   ID = "user-check"
	Shield      ID = "shield"
	Phone       ID = "phone"
	Video       ID = "video"
	MapPin      ID = "map-pin"
	Award       ID = "award"
	Clock       ID = "clock"
	Target      ID = "target"
	Zap         ID = "zap"
	Moon        ID = "moon"
	Coffee      ID = "coffee"
	Lightbulb   ID = "lightbulb"
	BookOpen    ID = "book-open"
	Calendar    ID = "calendar"
	Smile       ID = "smile"
	Star        ID = "star"
	CheckCircle ID = "check-circle"
)

var known = map[ID]struct{}{
	Brain: {}, Heart: {}, Users: {}, UserCheck: {}, Shield: {}, Phone: {},
	Video: {}, MapPin: {}, Award: {}, Clock: {}, Target: {}, Zap: {},
	Moon: {}, Coffee: {}, Lightbulb: {}, BookOpen: {}, Calendar: {},
	Smile: {}, Star: {}, CheckCircle: {},
}

// Valid reports whether id is a known icon. None is valid.
func (id ID) Valid() bool {
	if id == None {
		return true
	}
	_, ok := known[id]
	return ok
}

// UnmarshalText rejects unknown identifiers so content files fail loudly.
func (id *ID) UnmarshalText(text []byte) error {
	candidate := ID(strings.ToLower(strings.TrimSpace(string(text))))
	if !candidate.Valid() {
		return fmt.Errorf("icon: unknown icon %q", string(text))
	}
	*id = candidate
	return nil
}
