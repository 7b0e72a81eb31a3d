package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/benbeisheim/chess-rules/internal/model"
	"github.com/google/uuid"
)

// Match tells a queued player which game they were paired into.
type Match struct {
	GameID string      `json:"gameId"`
	Color  model.Color `json:"color"`
}

type GameManager struct {
	games            map[string]*Session
	queue            *Queue
	matchingChannels map[string]chan Match
	mu               sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games:            make(map[string]*Session),
		queue:            NewQueue(),
		matchingChannels: make(map[string]chan Match),
	}
}

// CreateGame hosts a new game in the starting position under a fresh ID.
func (gm *GameManager) CreateGame() (*Session, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	return gm.createGameLocked()
}

func (gm *GameManager) createGameLocked() (*Session, error) {
	id := uuid.New().String()
	if _, exists := gm.games[id]; exists {
		return nil, ErrGameExists
	}
	session := NewSession(id)
	gm.games[id] = session
	log.Printf("created game %s", id)
	return session, nil
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

func (gm *GameManager) GameCount() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

// JoinMatchmaking queues playerID. The returned channel receives exactly one
// Match and is then closed; it is closed without a value if the player
// leaves the queue first.
func (gm *GameManager) JoinMatchmaking(playerID string) (<-chan Match, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if err := gm.queue.AddPlayer(playerID); err != nil {
		return nil, err
	}
	ch := make(chan Match, 1)
	gm.matchingChannels[playerID] = ch
	log.Printf("player %s joined matchmaking, %d waiting", playerID, gm.queue.Size())
	return ch, nil
}

func (gm *GameManager) LeaveMatchmaking(playerID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gm.queue.RemovePlayer(playerID)
	if ch, exists := gm.matchingChannels[playerID]; exists {
		delete(gm.matchingChannels, playerID)
		close(ch)
	}
}

// RunMatchmaking pairs queued players every interval until ctx is done.
func (gm *GameManager) RunMatchmaking(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gm.MatchPlayers()
		}
	}
}

// MatchPlayers pairs as many queued players as possible and returns the
// number of games created.
func (gm *GameManager) MatchPlayers() int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	created := 0
	for {
		first, second, ok := gm.queue.NextPair()
		if !ok {
			return created
		}
		session, err := gm.createGameLocked()
		if err != nil {
			log.Printf("error creating matched game: %v", err)
			gm.requeueLocked(first, second)
			return created
		}
		for _, p := range []QueuedPlayer{first, second} {
			color, err := session.AddPlayer(p.PlayerID)
			if err != nil {
				log.Printf("error adding player %s to game %s: %v", p.PlayerID, session.ID, err)
				continue
			}
			gm.notifyMatchLocked(p.PlayerID, Match{GameID: session.ID, Color: color})
		}
		created++
	}
}

func (gm *GameManager) notifyMatchLocked(playerID string, match Match) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return
	}
	delete(gm.matchingChannels, playerID)
	ch <- match
	close(ch)
	log.Printf("matched player %s into game %s as %s", playerID, match.GameID, match.Color)
}

func (gm *GameManager) requeueLocked(players ...QueuedPlayer) {
	for _, p := range players {
		if err := gm.queue.AddPlayer(p.PlayerID); err != nil {
			log.Printf("error requeueing player %s: %v", p.PlayerID, err)
		}
	}
}
