package permission

// Permission levels form a closed set. The application only ever
// equality-checks against this set; levels are never compared by rank.
const (
	LevelNone = "None"
	LevelView = "View"
	LevelEdit = "Edit"
)

// Levels lists the valid permission levels in display order.
var Levels = []string{LevelNone, LevelView, LevelEdit}

// AdminUsername is the one account allowed to manage users and
// permissions. Admin is a hardcoded identity, not a role flag.
const AdminUsername = "admin"

func validLevel(level string) bool {
	for _, l := range Levels {
		if l == level {
			return true
		}
	}
	return false
}
