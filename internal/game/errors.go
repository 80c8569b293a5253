// internal/game/errors.go
package game

import "errors"

// Kind is a machine-readable reason an engine operation was rejected.
type Kind string

const (
	KindUnknown               Kind = "UNKNOWN"
	KindInvalidScoreFormat    Kind = "INVALID_SCORE_FORMAT"
	KindDuplicateZeroScore    Kind = "DUPLICATE_ZERO_SCORE"
	KindNoWinnerSelected      Kind = "NO_WINNER_SELECTED"
	KindIncompleteRoundScores Kind = "INCOMPLETE_ROUND_SCORES"
	KindPlayerLimitReached    Kind = "PLAYER_LIMIT_REACHED"
	KindEmptyPlayerName       Kind = "EMPTY_PLAYER_NAME"
	KindPlayerNameTooLong     Kind = "PLAYER_NAME_TOO_LONG"
	KindPlayerNotFound        Kind = "PLAYER_NOT_FOUND"
	KindRoundOutOfRange       Kind = "ROUND_OUT_OF_RANGE"
	KindWinnerScoreLocked     Kind = "WINNER_SCORE_LOCKED"
	KindUnsupportedLanguage   Kind = "UNSUPPORTED_LANGUAGE"
)

// ValidationError reports an operation that was rejected without changing state.
type ValidationError struct {
	Kind Kind
	msg  string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Is matches any ValidationError of the same kind, so errors.Is works against the
// sentinels below.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

func newValidationError(kind Kind, msg string) *ValidationError {
	return &ValidationError{Kind: kind, msg: msg}
}

var (
	ErrInvalidScoreFormat    = newValidationError(KindInvalidScoreFormat, "score must be a non-negative multiple of five")
	ErrDuplicateZeroScore    = newValidationError(KindDuplicateZeroScore, "only one winner may hold zero points in a round")
	ErrNoWinnerSelected      = newValidationError(KindNoWinnerSelected, "select a winner first")
	ErrIncompleteRoundScores = newValidationError(KindIncompleteRoundScores, "all players need a score greater than zero")
	ErrPlayerLimitReached    = newValidationError(KindPlayerLimitReached, "player limit reached")
	ErrEmptyPlayerName       = newValidationError(KindEmptyPlayerName, "player name cannot be empty")
	ErrPlayerNameTooLong     = newValidationError(KindPlayerNameTooLong, "player name is too long")
	ErrPlayerNotFound        = newValidationError(KindPlayerNotFound, "player not found")
	ErrRoundOutOfRange       = newValidationError(KindRoundOutOfRange, "round out of range")
	ErrWinnerScoreLocked     = newValidationError(KindWinnerScoreLocked, "the round winner's score is fixed at zero")
	ErrUnsupportedLanguage   = newValidationError(KindUnsupportedLanguage, "unsupported language")
)

// KindOf extracts the rejection kind from err.
// Returns KindUnknown if err is not a ValidationError.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return KindUnknown
}
