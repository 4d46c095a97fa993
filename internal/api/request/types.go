package request

// RegisterRequest is the request body for registering a wallet
type RegisterRequest struct {
	Passphrase string `json:"passphrase"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Identity   string `json:"identity"`
	Passphrase string `json:"passphrase"`
}

// DepositRequest is the request body for depositing to the vault
type DepositRequest struct {
	Amount uint64 `json:"amount"`
}

// CreateGameRequest is the request body for initializing a game
type CreateGameRequest struct {
	ID              string `json:"id"`
	Capacity        int    `json:"capacity,omitempty"`
	MinParticipants int    `json:"min_participants,omitempty"`
}

// SubmitStoryRequest is the request body for submitting the story
type SubmitStoryRequest struct {
	Story string `json:"story"`
}

// SubmitDrawingRequest is the request body for submitting a drawing
type SubmitDrawingRequest struct {
	Ref string `json:"ref"`
}

// SelectWinnerRequest is the request body for selecting the winner
type SelectWinnerRequest struct {
	Index uint32 `json:"index"`
}
