package service

import (
	"errors"
	"testing"

	"github.com/benbeisheim/chess-rules/internal/model"
	"github.com/benbeisheim/chess-rules/internal/ws"
)

func TestGameServiceFlow(t *testing.T) {
	gs := NewGameService(NewGameManager())
	gameID, err := gs.CreateGame()
	if err != nil {
		t.Fatal(err)
	}
	if c, err := gs.JoinGame(gameID, "alice"); err != nil || c != model.White {
		t.Fatalf("JoinGame(alice) = %v, %v", c, err)
	}
	if c, err := gs.JoinGame(gameID, "bob"); err != nil || c != model.Black {
		t.Fatalf("JoinGame(bob) = %v, %v", c, err)
	}

	state, err := gs.HandleMove(gameID, "alice", ws.MovePayload{From: "e2", To: "e4"})
	if err != nil {
		t.Fatalf("HandleMove: %v", err)
	}
	if state.Turn != model.Black {
		t.Errorf("Turn = %s, want black", state.Turn)
	}

	got, err := gs.GetGameState(gameID)
	if err != nil {
		t.Fatal(err)
	}
	if got.LastMove == nil || got.LastMove.String() != "e2e4" {
		t.Errorf("GetGameState last move = %v", got.LastMove)
	}

	moves, hasPiece, err := gs.LegalMoves(gameID, "g8")
	if err != nil || !hasPiece || len(moves) != 2 {
		t.Errorf("LegalMoves(g8) = %d moves, %v, %v; want 2, true, nil", len(moves), hasPiece, err)
	}
}

func TestGameServiceErrors(t *testing.T) {
	gs := NewGameService(NewGameManager())
	gameID, _ := gs.CreateGame()
	_, _ = gs.JoinGame(gameID, "alice")

	tests := []struct {
		name    string
		gameID  string
		payload ws.MovePayload
		want    error
	}{
		{"unknown game", "nope", ws.MovePayload{From: "e2", To: "e4"}, ErrGameNotFound},
		{"bad square", gameID, ws.MovePayload{From: "e9", To: "e4"}, model.ErrInvalidMove},
		{"bad promotion", gameID, ws.MovePayload{From: "e2", To: "e4", Promotion: "pawnish"}, model.ErrInvalidMove},
		{"illegal", gameID, ws.MovePayload{From: "e2", To: "e5"}, model.ErrInvalidMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := gs.HandleMove(tt.gameID, "alice", tt.payload); !errors.Is(err, tt.want) {
				t.Errorf("HandleMove = %v, want %v", err, tt.want)
			}
		})
	}

	if _, _, err := gs.LegalMoves(gameID, "x0"); !errors.Is(err, model.ErrOutOfBounds) {
		t.Errorf("LegalMoves(x0) = %v, want ErrOutOfBounds", err)
	}
}

func TestLeaveMatchmakingFreesUnclaimedSeat(t *testing.T) {
	gm := NewGameManager()
	gs := NewGameService(gm)
	alice, _ := gs.JoinMatchmaking("alice")
	bob, _ := gs.JoinMatchmaking("bob")
	if got := gm.MatchPlayers(); got != 1 {
		t.Fatalf("MatchPlayers = %d, want 1", got)
	}

	// alice's socket closed before her match was read
	if !gs.LeaveMatchmaking("alice", alice) {
		t.Fatal("LeaveMatchmaking did not free the unclaimed seat")
	}
	match := <-bob
	session, err := gm.GetGame(match.GameID)
	if err != nil {
		t.Fatal(err)
	}
	if session.IsPlayerInGame("alice") {
		t.Error("alice still seated")
	}
	if c, err := session.AddPlayer("carol"); err != nil || c != model.White {
		t.Errorf("AddPlayer(carol) = %v, %v; want white", c, err)
	}
}

func TestLeaveMatchmakingWhileWaiting(t *testing.T) {
	gs := NewGameService(NewGameManager())
	ch, _ := gs.JoinMatchmaking("alice")
	if gs.LeaveMatchmaking("alice", ch) {
		t.Error("LeaveMatchmaking reported a freed seat without a match")
	}
	if _, err := gs.JoinMatchmaking("alice"); err != nil {
		t.Errorf("rejoin after leaving: %v", err)
	}
}
