package models

// Group represents a named collection of users who share expenses.
type Group struct {
	// ID is the store-assigned identifier.
	ID int64

	// Name is the unique display name of the group (e.g., "Roommates", "Weekend Trip").
	Name string

	// CreatedByID is the user who created the group. The creator is always its first member.
	CreatedByID int64

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64

	// Members lists the group's memberships, oldest first.
	// Populated by store reads; ignored on create.
	Members []GroupMember
}

// GroupMember links a user to a group. Unique per (GroupID, UserID).
type GroupMember struct {
	GroupID  int64
	UserID   int64
	JoinedAt int64
}

// HasMember reports whether userID belongs to the group.
func (g *Group) HasMember(userID int64) bool {
	for _, m := range g.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
