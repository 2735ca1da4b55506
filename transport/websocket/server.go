package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

const maxMessageBytes = 1 << 10

type gameUseCase interface {
	GetGame(ctx context.Context, sessionID string) (entity.Game, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (usecase.TurnResult, error)
	ResetGame(ctx context.Context, sessionID string) (entity.Game, error)
}

type handlerFunc func(ctx context.Context, sessionID string, msg *Message) (ResponsePayload, error)

type Server struct {
	logger   *slog.Logger
	games    gameUseCase
	sessions *pkg.Sessions
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, games gameUseCase, sessions *pkg.Sessions) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		games:    games,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  maxMessageBytes,
			WriteBufferSize: maxMessageBytes,
		},
	}

	server.handlers = map[string]handlerFunc{
		actionGameState: server.handleGameState,
		actionGameTurn:  server.handleGameTurn,
		actionGameReset: server.handleGameReset,
	}

	return server
}

// ServeHTTP upgrades the connection and serves the session's game over it.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	sessionID, fresh := that.sessions.Resolve(req)

	header := http.Header{}
	if fresh != nil {
		header.Add("Set-Cookie", fresh.String())
	}

	conn, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	// the HTTP server's request timeouts must not end the socket
	_ = conn.SetReadDeadline(time.Time{})
	_ = conn.SetWriteDeadline(time.Time{})

	log = log.With("sessionID", sessionID)
	log.Info("WebSocket connection established")

	if err = that.handleMessages(req.Context(), conn, sessionID); err != nil {
		log.Error("error handling messages", "error", err)
		return
	}

	log.Info("WebSocket connection closed")
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, sessionID string) error {
	log := that.logger.With("method", "handleMessages", "sessionID", sessionID)

	conn.SetReadLimit(maxMessageBytes)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)

			if err = that.send(conn, "", ResponsePayload{Error: "invalid message"}); err != nil {
				return err
			}

			continue
		}

		payload, err := that.dispatch(ctx, sessionID, &message)
		if err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
			payload = ResponsePayload{Error: clientError(err)}
		}

		if err = that.send(conn, message.Action, payload); err != nil {
			return err
		}
	}
}

var errUnknownAction = errors.New("unknown action")

// clientError hides infrastructure failures from the client.
func clientError(err error) string {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.Is(err, errUnknownAction), errors.Is(err, errCellRequired):
		return err.Error()
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return "invalid payload"
	default:
		return "internal error"
	}
}

func (that *Server) dispatch(ctx context.Context, sessionID string, message *Message) (ResponsePayload, error) {
	handler, ok := that.handlers[message.Action]
	if !ok {
		return ResponsePayload{}, fmt.Errorf("%w: %q", errUnknownAction, message.Action)
	}

	return handler(ctx, sessionID, message)
}

func (that *Server) send(conn *websocket.Conn, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
