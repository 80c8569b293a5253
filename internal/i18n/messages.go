// internal/i18n/messages.go
package i18n

import (
	"github.com/jason-s-yu/carioca/internal/game"
	"github.com/jason-s-yu/carioca/internal/models"
)

func errKey(k game.Kind) Key {
	return Key(errorKeyPrefix + string(k))
}

// Plural forms for objective parts: {one, other}.
var pluralForms = map[models.Language]map[Key][2]string{
	models.LanguageSpanish: {
		KeyTrios:   {"%d Trio", "%d Trios"},
		KeyEscalas: {"%d Escala", "%d Escalas"},
	},
	models.LanguageEnglish: {
		KeyTrios:   {"%d Set", "%d Sets"},
		KeyEscalas: {"%d Run", "%d Runs"},
	},
	models.LanguageSwedish: {
		KeyTrios:   {"%d Triss", "%d Trissar"},
		KeyEscalas: {"%d Stege", "%d Stegar"},
	},
}

var messages = map[models.Language]map[Key]string{
	models.LanguageSpanish: {
		KeyTitle:          "Marcador Carioca",
		KeyAddPlayers:     "Agregar Jugadores",
		KeyPlayerName:     "Nombre del jugador",
		KeyRound:          "Ronda %d",
		KeyRoundShort:     "R%d",
		KeyLastRound:      "Última ronda",
		KeyColPlayer:      "Jugador",
		KeyColTotal:       "Total",
		KeyColRank:        "Puesto",
		KeyWinner:         "Ganador",
		KeyReset:          "Reiniciar Juego",
		KeyResetConfirm:   "¿Reiniciar el juego?",
		KeyConfirmHint:    "(s/N)",
		KeyConfirmYes:     "s",
		KeyScoring:        "Puntuación",
		KeyScoringGuide:   "Jokers: %d | Ases: %d | 8-K: %d | 2-7: %d",
		KeyLanguage:       "Idioma: %s",
		KeyUnknownCommand: "Comando desconocido: %s",
		KeyUsage:          "Uso: %s",

		KeyHelp: "Comandos: add <nombre> | rm <n> | win <n> | score <n> <puntos> | " +
			"next | prev | reset | lang <es|en|sv> | show | help | quit",

		errKey(game.KindInvalidScoreFormat):    "Los puntos deben ser múltiplos de 5",
		errKey(game.KindDuplicateZeroScore):    "Solo un jugador puede tener 0 puntos por ronda (el ganador)",
		errKey(game.KindNoWinnerSelected):      "Debe seleccionar un ganador antes de avanzar",
		errKey(game.KindIncompleteRoundScores): "Todos los jugadores deben tener puntos asignados (mayores a 0)",
		errKey(game.KindPlayerLimitReached):    "Máximo %d jugadores",
		errKey(game.KindEmptyPlayerName):       "El nombre no puede estar vacío",
		errKey(game.KindPlayerNameTooLong):     "El nombre puede tener como máximo %d caracteres",
		errKey(game.KindPlayerNotFound):        "Jugador no encontrado",
		errKey(game.KindRoundOutOfRange):       "Ronda inválida",
		errKey(game.KindWinnerScoreLocked):     "El ganador de la ronda siempre tiene 0 puntos",
		errKey(game.KindUnsupportedLanguage):   "Idioma no soportado",
	},
	models.LanguageEnglish: {
		KeyTitle:          "Carioca Scoreboard",
		KeyAddPlayers:     "Add Players",
		KeyPlayerName:     "Player name",
		KeyRound:          "Round %d",
		KeyRoundShort:     "R%d",
		KeyLastRound:      "Last round",
		KeyColPlayer:      "Player",
		KeyColTotal:       "Total",
		KeyColRank:        "Rank",
		KeyWinner:         "Winner",
		KeyReset:          "Reset Game",
		KeyResetConfirm:   "Reset the game?",
		KeyConfirmHint:    "(y/N)",
		KeyConfirmYes:     "y",
		KeyScoring:        "Scoring",
		KeyScoringGuide:   "Jokers: %d | Aces: %d | 8-K: %d | 2-7: %d",
		KeyLanguage:       "Language: %s",
		KeyUnknownCommand: "Unknown command: %s",
		KeyUsage:          "Usage: %s",

		KeyHelp: "Commands: add <name> | rm <n> | win <n> | score <n> <points> | " +
			"next | prev | reset | lang <es|en|sv> | show | help | quit",

		errKey(game.KindInvalidScoreFormat):    "Points must be a multiple of 5",
		errKey(game.KindDuplicateZeroScore):    "Only one player can have 0 points per round (the winner)",
		errKey(game.KindNoWinnerSelected):      "You must select a winner before advancing",
		errKey(game.KindIncompleteRoundScores): "All players must have points assigned (greater than 0)",
		errKey(game.KindPlayerLimitReached):    "At most %d players",
		errKey(game.KindEmptyPlayerName):       "Name cannot be empty",
		errKey(game.KindPlayerNameTooLong):     "Name can be at most %d characters",
		errKey(game.KindPlayerNotFound):        "Player not found",
		errKey(game.KindRoundOutOfRange):       "Invalid round",
		errKey(game.KindWinnerScoreLocked):     "The round winner always has 0 points",
		errKey(game.KindUnsupportedLanguage):   "Unsupported language",
	},
	models.LanguageSwedish: {
		KeyTitle:          "Carioca poängtavla",
		KeyAddPlayers:     "Lägg till spelare",
		KeyPlayerName:     "Spelarens namn",
		KeyRound:          "Omgång %d",
		KeyRoundShort:     "O%d",
		KeyLastRound:      "Sista omgången",
		KeyColPlayer:      "Spelare",
		KeyColTotal:       "Totalt",
		KeyColRank:        "Placering",
		KeyWinner:         "Vinnare",
		KeyReset:          "Starta om spelet",
		KeyResetConfirm:   "Starta om spelet?",
		KeyConfirmHint:    "(j/N)",
		KeyConfirmYes:     "j",
		KeyScoring:        "Poäng",
		KeyScoringGuide:   "Jokrar: %d | Ess: %d | 8-K: %d | 2-7: %d",
		KeyLanguage:       "Språk: %s",
		KeyUnknownCommand: "Okänt kommando: %s",
		KeyUsage:          "Användning: %s",

		KeyHelp: "Kommandon: add <namn> | rm <n> | win <n> | score <n> <poäng> | " +
			"next | prev | reset | lang <es|en|sv> | show | help | quit",

		errKey(game.KindInvalidScoreFormat):    "Poängen måste vara en multipel av 5",
		errKey(game.KindDuplicateZeroScore):    "Endast en spelare kan ha 0 poäng per omgång (vinnaren)",
		errKey(game.KindNoWinnerSelected):      "Du måste välja en vinnare innan du går vidare",
		errKey(game.KindIncompleteRoundScores): "Alla spelare måste ha poäng (större än 0)",
		errKey(game.KindPlayerLimitReached):    "Högst %d spelare",
		errKey(game.KindEmptyPlayerName):       "Namnet får inte vara tomt",
		errKey(game.KindPlayerNameTooLong):     "Namnet får vara högst %d tecken",
		errKey(game.KindPlayerNotFound):        "Spelaren hittades inte",
		errKey(game.KindRoundOutOfRange):       "Ogiltig omgång",
		errKey(game.KindWinnerScoreLocked):     "Omgångens vinnare har alltid 0 poäng",
		errKey(game.KindUnsupportedLanguage):   "Språket stöds inte",
	},
}

// errorArgs supplies the format arguments some error messages need.
var errorArgs = map[game.Kind][]any{
	game.KindPlayerLimitReached: {models.MaxPlayers},
	game.KindPlayerNameTooLong:  {models.MaxNameLength},
}
