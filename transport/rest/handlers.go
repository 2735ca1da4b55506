package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/render"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-hotseat/web"
)

const maxBodyBytes = 1 << 10

type gameUseCase interface {
	GetGame(ctx context.Context, sessionID string) (entity.Game, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (usecase.TurnResult, error)
	ResetGame(ctx context.Context, sessionID string) (entity.Game, error)
	EndSession(ctx context.Context, sessionID string) error
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger   *slog.Logger
	games    gameUseCase
	sessions *pkg.Sessions
}

func (that *handlers) page(w http.ResponseWriter, r *http.Request) {
	that.sessions.Ensure(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(web.Index); err != nil {
		that.logger.Error("failed to write page", "error", err)
	}
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	sessionID := that.sessions.Ensure(w, r)

	game, err := that.games.GetGame(r.Context(), sessionID)
	if err != nil {
		that.internalError(w, "getGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, render.NewView(game, nil))
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	sessionID := that.sessions.Ensure(w, r)

	var req turnRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cell is required"})
		return
	}

	result, err := that.games.MakeTurn(r.Context(), sessionID, *req.Cell)
	if err != nil {
		that.internalError(w, "makeTurn", err)
		return
	}

	// an ignored move is still a normal answer: the board just did not change
	that.writeJSON(w, http.StatusOK, render.NewView(result.Game, result.Ignored))
}

func (that *handlers) resetGame(w http.ResponseWriter, r *http.Request) {
	sessionID := that.sessions.Ensure(w, r)

	game, err := that.games.ResetGame(r.Context(), sessionID)
	if err != nil {
		that.internalError(w, "resetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, render.NewView(game, nil))
}

func (that *handlers) endSession(w http.ResponseWriter, r *http.Request) {
	sessionID, fresh := that.sessions.Resolve(r)
	if fresh != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	err := that.games.EndSession(r.Context(), sessionID)
	if err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
		that.internalError(w, "endSession", err)
		return
	}

	that.sessions.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) internalError(w http.ResponseWriter, method string, err error) {
	that.logger.Error("request failed", "method", method, "error", err)
	that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
