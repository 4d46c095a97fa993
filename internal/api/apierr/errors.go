package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pixelana/pixelana-go/internal/model"
	"github.com/pixelana/pixelana-go/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes. Authorization codes (NOT_CREATOR, NOT_HOST,
// NOT_PARTICIPANT) stay distinct from INVALID_PHASE so clients can
// tell wrong actor from wrong time.
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotCreator         = "NOT_CREATOR"
	CodeNotHost            = "NOT_HOST"
	CodeNotParticipant     = "NOT_PARTICIPANT"
	CodeInvalidPhase       = "INVALID_PHASE"
	CodeVaultExists        = "VAULT_EXISTS"
	CodeVaultNotFound      = "VAULT_NOT_FOUND"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeGameExists         = "GAME_EXISTS"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeGameFull           = "GAME_FULL"
	CodeAlreadyJoined      = "ALREADY_JOINED"
	CodeAlreadyInGame      = "ALREADY_IN_GAME"
	CodeAlreadySubmitted   = "ALREADY_SUBMITTED"
	CodeNotEnoughPlayers   = "NOT_ENOUGH_PLAYERS"
	CodeInvalidGameID      = "INVALID_GAME_ID"
	CodeInvalidCapacity    = "INVALID_CAPACITY"
	CodeInvalidAmount      = "INVALID_AMOUNT"
	CodeEmptyStory         = "EMPTY_STORY"
	CodeEmptyDrawing       = "EMPTY_DRAWING"
	CodeInvalidWinnerIndex = "INVALID_WINNER_INDEX"
	CodeGameCompleted      = "GAME_COMPLETED"
	CodeMintFailed         = "MINT_FAILED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrVaultExists):
		return &httpError{http.StatusConflict, APIError{CodeVaultExists, "Vault is already initialized"}}
	case errors.Is(err, model.ErrVaultNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeVaultNotFound, "Vault not found"}}
	case errors.Is(err, model.ErrNotCreator):
		return &httpError{http.StatusForbidden, APIError{CodeNotCreator, "Only the vault creator can perform this action"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrGameExists):
		return &httpError{http.StatusConflict, APIError{CodeGameExists, "Game already exists"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrNotHost):
		return &httpError{http.StatusForbidden, APIError{CodeNotHost, "Only the host can perform this action"}}
	case errors.Is(err, model.ErrNotParticipant):
		return &httpError{http.StatusForbidden, APIError{CodeNotParticipant, "Only a participant can perform this action"}}
	case errors.Is(err, model.ErrInvalidPhase):
		return &httpError{http.StatusConflict, APIError{CodeInvalidPhase, "Operation not valid in the game's current phase"}}
	case errors.Is(err, model.ErrGameFull):
		return &httpError{http.StatusConflict, APIError{CodeGameFull, "Game is at capacity"}}
	case errors.Is(err, model.ErrAlreadyJoined):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyJoined, "Already joined this game"}}
	case errors.Is(err, model.ErrAlreadyInGame):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInGame, "Already in a game"}}
	case errors.Is(err, model.ErrAlreadySubmitted):
		return &httpError{http.StatusConflict, APIError{CodeAlreadySubmitted, "Already submitted a drawing"}}
	case errors.Is(err, model.ErrNotEnoughPlayers):
		return &httpError{http.StatusConflict, APIError{CodeNotEnoughPlayers, "Not enough participants to start"}}
	case errors.Is(err, model.ErrInvalidGameID):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGameID, "Game id must be 1-32 chars of A-Z or 0-9"}}
	case errors.Is(err, model.ErrInvalidCapacity):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCapacity, "Capacity must be at least 2"}}
	case errors.Is(err, model.ErrInvalidAmount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidAmount, "Amount must be positive"}}
	case errors.Is(err, model.ErrEmptyStory):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyStory, "Story must not be empty"}}
	case errors.Is(err, model.ErrEmptyDrawing):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyDrawing, "Drawing reference must not be empty"}}
	case errors.Is(err, model.ErrInvalidWinnerIndex):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidWinnerIndex, "Winner index out of range"}}
	case errors.Is(err, model.ErrGameCompleted):
		return &httpError{http.StatusConflict, APIError{CodeGameCompleted, "Game is completed"}}
	case errors.Is(err, model.ErrMintFailed):
		return &httpError{http.StatusBadGateway, APIError{CodeMintFailed, "Minting collaborator failed; retry later"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid identity or passphrase"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
