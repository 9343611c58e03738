package user

// User represents a row in the users table.
type User struct {
	ID     int64
	Name   string
	Role   string
	TeamID *int64 // nil when the user has no team

	// TeamName is filled from a join on teams by List.
	TeamName *string
}
