package poker

type CreateSessionCommand struct {
	Name         string `validate:"required"`
	VotingSystem string `validate:"required"`
}

type JoinSessionCommand struct {
	SessionID string `validate:"required"`
	UserID    string `validate:"required"`
	Name      string `validate:"required"`
}

type UpdateStoryPointCommand struct {
	SessionID string   `validate:"required"`
	UserID    string   `validate:"required"`
	Point     *float64 `validate:"required"`
}

// UpdateSettingsCommand carries the per-round display settings.
// The numeric fields are pointers so that an explicit 0 passes validation
// while a missing field does not.
type UpdateSettingsCommand struct {
	SessionID            string   `validate:"required"`
	Name                 string   `validate:"required"`
	Goal                 string   `validate:"required"`
	PrevSprintSP         *float64 `validate:"required"`
	CurrentSprintSPLimit *float64 `validate:"required"`
}
