package constants

// Centralized constants for env keys, routes and shared strings. The server
// binary's own env knobs live in its env struct tags; only keys read outside
// that struct belong here.
const (
	EnvLogLevel = "TEMPO_LOG_LEVEL"
)

// Routes used by the backend router
const (
	RouteAPIPrefix    = "/api"
	RouteVersion      = "/version"
	RouteCards        = "/cards"
	RouteEnemies      = "/enemies"
	RouteLeaderboard  = "/leaderboard"
	RouteRuns         = "/runs"
	RouteRunByUUID    = "/runs/:runUUID"
	RouteRunBattles   = "/runs/:runUUID/battles"
	RouteRunTurn      = "/runs/:runUUID/turn"
	RouteRunPreview   = "/runs/:runUUID/preview"
	RouteComboPreview = "/combo-preview"
)

// Common JSON response keys
const (
	JSONKeyError = "error"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest    = "Invalid request"
	ErrInvalidRunID      = "Invalid run ID"
	ErrRunNotFound       = "Run not found"
	ErrBattleNotFound    = "No active battle"
	ErrEnemyNotFound     = "Unknown enemy"
	ErrFailedCreateRun   = "Failed to create run"
	ErrFailedUpdateRun   = "Failed to update run"
	ErrFailedFetchBoard  = "Failed to fetch leaderboard"
	ErrFailedSubmitTurn  = "Failed to submit turn"
	ErrFailedPreviewTurn = "Failed to preview turn"
	ErrDeckEmpty         = "Deck resolves to no known cards"
	ErrCardNotInDeck     = "Selected card is not in the run deck"
	ErrRunNotInProgress  = "Run is not in progress"
)

// Logging field names
const (
	LogFieldRunUUID = "run_uuid"
	LogFieldEnemy   = "enemy"
	LogFieldMode    = "mode"
	LogFieldAddr    = "addr"
)
