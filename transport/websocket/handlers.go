package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/render"
)

var errCellRequired = errors.New("cell is required")

func (that *Server) handleGameState(ctx context.Context, sessionID string, _ *Message) (ResponsePayload, error) {
	game, err := that.games.GetGame(ctx, sessionID)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to get game: %w", err)
	}

	view := render.NewView(game, nil)

	return ResponsePayload{View: &view}, nil
}

func (that *Server) handleGameTurn(ctx context.Context, sessionID string, msg *Message) (ResponsePayload, error) {
	var payloadReq RequestPayload

	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
			return ResponsePayload{}, fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	if payloadReq.Cell == nil {
		return ResponsePayload{}, errCellRequired
	}

	result, err := that.games.MakeTurn(ctx, sessionID, *payloadReq.Cell)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to make turn: %w", err)
	}

	view := render.NewView(result.Game, result.Ignored)

	return ResponsePayload{View: &view}, nil
}

func (that *Server) handleGameReset(ctx context.Context, sessionID string, _ *Message) (ResponsePayload, error) {
	game, err := that.games.ResetGame(ctx, sessionID)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to reset game: %w", err)
	}

	view := render.NewView(game, nil)

	return ResponsePayload{View: &view}, nil
}
