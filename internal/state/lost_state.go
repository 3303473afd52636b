// internal/state/lost_state.go
package state

import (
	"fmt"

	"go-waypoint-defense/internal/assets"
	"go-waypoint-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*LostState)(nil)

// LostState — жизни кончились. R начинает игру заново на той же карте.
type LostState struct {
	sm     *StateMachine
	ingame *InGameState
	fonts  *assets.Fonts
}

func NewLostState(sm *StateMachine, ingame *InGameState, fonts *assets.Fonts) *LostState {
	return &LostState{sm: sm, ingame: ingame, fonts: fonts}
}

func (s *LostState) Enter() {
	g := s.ingame.game
	s.ingame.logger.Info("game lost", "elapsed", g.Elapsed(), "wave", g.CurrentWave()+1, "money", g.Money())
}

func (s *LostState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.ingame.game.Reset()
		s.ingame.infoPanel.Hide()
		s.sm.SetState(s.ingame)
	}
}

func (s *LostState) Draw(screen *ebiten.Image) {
	g := s.ingame.game
	s.ingame.drawWorld(screen)
	ui.DrawOverlay(screen, s.fonts, "YOU LOST",
		fmt.Sprintf("Survived %.1fs, reached wave %d", g.Elapsed(), g.CurrentWave()+1),
		"R - restart")
}

func (s *LostState) Exit() {}
