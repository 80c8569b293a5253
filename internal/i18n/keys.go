// Package i18n holds the language-keyed string table used by the presentation layer.
//
// The game engine never formats user-facing text; callers look strings up here by
// key, and validation errors are mapped to keys by their kind.
package i18n

// Key identifies one translatable string.
type Key string

const (
	KeyTitle          Key = "title"
	KeyAddPlayers     Key = "add_players"
	KeyPlayerName     Key = "player_name"
	KeyRound          Key = "round"
	KeyRoundShort     Key = "round_short"
	KeyLastRound      Key = "last_round"
	KeyColPlayer      Key = "col_player"
	KeyColTotal       Key = "col_total"
	KeyColRank        Key = "col_rank"
	KeyWinner         Key = "winner"
	KeyReset          Key = "reset"
	KeyResetConfirm   Key = "reset_confirm"
	KeyConfirmHint    Key = "confirm_hint"
	KeyConfirmYes     Key = "confirm_yes"
	KeyScoring        Key = "scoring"
	KeyScoringGuide   Key = "scoring_guide"
	KeyLanguage       Key = "language"
	KeyHelp           Key = "help"
	KeyUnknownCommand Key = "unknown_command"
	KeyUsage          Key = "usage"
	KeyTrios          Key = "trios"
	KeyEscalas        Key = "escalas"
)

// errorKeyPrefix + game.Kind names the message for a validation error.
const errorKeyPrefix = "error."
