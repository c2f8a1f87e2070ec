package permission

import (
	"sort"

	"clinikit/internal/domain/module"
	"clinikit/internal/domain/user"
)

// RequireAdmin gates operations reserved for the admin account.
func RequireAdmin(u user.User) error {
	if u.Username != AdminUsername {
		return ErrForbidden
	}
	return nil
}

// ValidatePayload checks every (module, level) pair of a permission
// update against the module registry and the level set. Validation is
// all-or-nothing: the first invalid pair aborts the whole update, so
// callers must not write anything before this returns nil. Pairs are
// checked in sorted module order to keep the reported offender stable.
func ValidatePayload(payload map[string]string, known []module.Module) error {
	ids := make(map[string]struct{}, len(known))
	for _, m := range known {
		ids[m.ID] = struct{}{}
	}

	modules := make([]string, 0, len(payload))
	for m := range payload {
		modules = append(modules, m)
	}
	sort.Strings(modules)

	for _, m := range modules {
		level := payload[m]
		if _, ok := ids[m]; !ok || !validLevel(level) {
			return &InvalidSettingError{Module: m, Level: level}
		}
	}
	return nil
}

// Card is a dashboard entry for a module the user may access.
type Card struct {
	ID          string `json:"id"`
	Href        string `json:"href"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// VisibleCards returns one card per registry module for which the user
// holds a permission other than "None". Modules the user has no entry
// for, and permission entries pointing at unknown modules, are silently
// omitted. Registry order is preserved.
func VisibleCards(u user.User, known []module.Module) []Card {
	cards := make([]Card, 0, len(known))
	for _, m := range known {
		level, ok := u.Permissions[m.ID]
		if !ok || level == LevelNone {
			continue
		}
		cards = append(cards, Card{
			ID:          m.ID,
			Href:        m.Href,
			Title:       m.Title,
			Description: m.Description,
			Icon:        m.Icon,
		})
	}
	return cards
}
