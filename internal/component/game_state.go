// internal/component/game_state.go
package component

// GameState — счётчики игрока.
type GameState struct {
	Money int
	Lives int
	Over  bool
}

// Wave — состояние выпуска текущей волны.
type Wave struct {
	Index   int     // номер текущей волны в списке
	Counter int     // сколько мобов волны уже выпущено
	Timer   float64 // накопленное время с последнего выпуска
	Started bool    // WaveStarted уже отправлено
}
