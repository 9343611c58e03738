package team

// Team represents a row in the teams table.
type Team struct {
	ID   int64
	Name string

	// Members holds the names of the users whose team_id references this
	// team, ordered by user id. Populated by List only.
	Members []string
}
