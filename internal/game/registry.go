package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/othello"
)

var (
	ErrNotFound     = errors.New("game not found")
	ErrRegistryFull = errors.New("too many games")
)

// Registry keeps the games of this process in memory. Games are lost on restart.
type Registry struct {
	// games maps game ID to game
	games map[uuid.UUID]*Game

	// maxGames limits the number of live games, 0 means no limit
	maxGames int

	// gamesMutex protects games
	gamesMutex sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry(maxGames int) *Registry {
	return &Registry{
		games:    make(map[uuid.UUID]*Game),
		maxGames: maxGames,
	}
}

// Create starts a new game and registers it.
func (r *Registry) Create(computer othello.Player) (*Game, error) {
	if computer != othello.Empty && computer != othello.Black && computer != othello.White {
		return nil, fmt.Errorf("invalid computer color: %d", computer)
	}

	r.gamesMutex.Lock()
	defer r.gamesMutex.Unlock()

	if r.maxGames > 0 && len(r.games) >= r.maxGames {
		return nil, ErrRegistryFull
	}

	g := New(computer)
	r.games[g.ID()] = g
	return g, nil
}

// Get looks up a game by ID.
func (r *Registry) Get(id uuid.UUID) (*Game, error) {
	r.gamesMutex.RLock()
	defer r.gamesMutex.RUnlock()

	g, ok := r.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return g, nil
}

// GetString looks up a game by the string form of its ID.
func (r *Registry) GetString(id string) (*Game, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r.Get(parsed)
}

// Delete removes a game. It returns ErrNotFound if there is no such game.
func (r *Registry) Delete(id uuid.UUID) error {
	r.gamesMutex.Lock()
	defer r.gamesMutex.Unlock()

	if _, ok := r.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	delete(r.games, id)
	return nil
}

// Len returns the number of live games.
func (r *Registry) Len() int {
	r.gamesMutex.RLock()
	defer r.gamesMutex.RUnlock()

	return len(r.games)
}
