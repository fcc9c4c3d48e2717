package poker

// Session is one estimation round's full state: roster, votes and display settings.
// Version is bumped on every committed mutation so polling clients can detect change cheaply.
type Session struct {
	GUID                 string        `json:"guid"`
	Name                 string        `json:"name"`
	VotingSystem         string        `json:"votingSystem"`
	Users                []Participant `json:"users"`
	Hide                 bool          `json:"hide"`
	PrevSprintSP         float64       `json:"prevSprintSP"`
	CurrentSprintSPLimit float64       `json:"currentSprintSPLimit"`
	Goal                 string        `json:"goal"`
	Version              uint64        `json:"version"`
}

// Participant is one user's membership and vote within a session.
// Join order is preserved: Users[0] is the creator of the roster.
type Participant struct {
	UserID       string  `json:"userId"`
	Name         string  `json:"name"`
	IsOnline     bool    `json:"isOnline"`
	Point        float64 `json:"point"`
	SessionOwner bool    `json:"sessionOwner"`
}

// IndexOfUser returns the position of userID in the roster, or -1 when absent.
func (s Session) IndexOfUser(userID string) int {
	for i, u := range s.Users {
		if u.UserID == userID {
			return i
		}
	}
	return -1
}
