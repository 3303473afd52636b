package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/pkg/geom"
)

// Server крутит симуляцию с фиксированным шагом и раздаёт снимки.
// Все обращения к Game идут под mu.
type Server struct {
	mu   sync.Mutex
	game *app.Game

	hub           *Hub
	tick          time.Duration
	snapshotEvery time.Duration
	logger        *slog.Logger
}

func NewServer(game *app.Game, snapshotHz int, logger *slog.Logger) *Server {
	s := &Server{
		game:          game,
		tick:          time.Second / config.FPS,
		snapshotEvery: time.Second / time.Duration(max(snapshotHz, 1)),
		logger:        logger,
	}
	s.hub = NewHub(s, logger)
	return s
}

// Hub — хаб клиентов сервера.
func (s *Server) Hub() *Hub { return s.hub }

// Run шагает мир и рассылает снимки до отмены ctx.
func (s *Server) Run(ctx context.Context) {
	go s.hub.Run(ctx)

	step := time.NewTicker(s.tick)
	defer step.Stop()
	snap := time.NewTicker(s.snapshotEvery)
	defer snap.Stop()

	dt := s.tick.Seconds()
	for {
		select {
		case <-ctx.Done():
			return
		case <-step.C:
			s.mu.Lock()
			s.game.Update(dt)
			s.mu.Unlock()
		case <-snap.C:
			s.hub.Broadcast(Message{Event: "snapshot", Data: s.Snapshot()})
		}
	}
}

// Snapshot — текущий снимок мира.
func (s *Server) Snapshot() app.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// HandleCommand реализует CommandHandler.
func (s *Server) HandleCommand(cmd Command) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch cmd.Action {
	case "place":
		shooterType := cmd.Type
		if shooterType == "" {
			shooterType = s.game.SelectedShooter
		}
		id, err := s.game.PlaceShooter(shooterType, geom.V(cmd.X, cmd.Y))
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"id": id, "money": s.game.Money()}, nil
	case "remove":
		if !s.game.RemoveShooterAt(geom.V(cmd.X, cmd.Y)) {
			return nil, fmt.Errorf("no shooter at (%v, %v)", cmd.X, cmd.Y)
		}
		return map[string]interface{}{"money": s.game.Money()}, nil
	case "cycle":
		return map[string]interface{}{"selected": s.game.CycleShooter()}, nil
	case "reset":
		s.game.Reset()
		s.logger.Info("game reset by client")
		return map[string]interface{}{"elapsed": s.game.Elapsed()}, nil
	default:
		return nil, fmt.Errorf("unknown action %q", cmd.Action)
	}
}

// Handler — HTTP-маршруты: /ws, /snapshot и /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.hub.ServeWS)
	mux.HandleFunc("GET /snapshot", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s.Snapshot()); err != nil {
			s.logger.Warn("failed to write snapshot", "error", err)
		}
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}
