// internal/state/pause_state.go
package state

import (
	"go-waypoint-defense/internal/assets"
	"go-waypoint-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает мир; игровое время не идёт.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *InGameState
	fonts         *assets.Fonts
}

func NewPauseState(sm *StateMachine, prevState *InGameState, fonts *assets.Fonts) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		fonts:         fonts,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.drawWorld(screen)
	ui.DrawOverlay(screen, s.fonts, "PAUSED", "P / Esc - resume")
}

func (s *PauseState) Exit() {}
