package ws

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/services"
)

type Handler struct {
	services *services.Services
	ws       *websocket.Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, services *services.Services) *Handler {
	return &Handler{services: services, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	var data any
	var err error

	switch req.Event {
	case "new_game":
		data, err = h.handleNewGame(req)
	case "state":
		data, err = h.handleState(req)
	case "move":
		data, err = h.handleMove(req)
	case "pass":
		data, err = h.handlePass(req)
	case "computer_move":
		data, err = h.handleComputerMove(req)
	case "undo":
		data, err = h.handleUndo(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}

	if err != nil {
		return nil, err
	}

	return &Outgoing{ID: req.ID, Data: data}, nil
}

// Handle handles the websocket connection. Errors caused by a message are sent back to the
// client, the connection is only closed when reading or writing fails.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		outgoing, err := h.handleMessage(req)
		if err != nil {
			slog.Debug("ws request failed", "event", req.Event, "error", err)
			outgoing = &Outgoing{ID: req.ID, Error: err.Error()}
		}

		if err = h.writeMessage(outgoing); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func unmarshalData(req *Incoming, target any) error {
	if len(req.Data) == 0 {
		return fmt.Errorf("ws %s request has no data", req.Event)
	}

	if err := json.Unmarshal(req.Data, target); err != nil {
		return fmt.Errorf("ws %s request unmarshal error: %w", req.Event, err)
	}
	return nil
}

func (h *Handler) loadGame(req *Incoming) (*game.Game, error) {
	var reqData GameRequest
	if err := unmarshalData(req, &reqData); err != nil {
		return nil, err
	}

	return h.services.Games.GetString(reqData.GameID)
}

func (h *Handler) handleNewGame(req *Incoming) (any, error) {
	var reqData models.NewGamePayload
	if len(req.Data) > 0 {
		if err := unmarshalData(req, &reqData); err != nil {
			return nil, err
		}
	}

	computer, err := reqData.ComputerColor()
	if err != nil {
		return nil, err
	}

	g, err := h.services.Games.Create(computer)
	if err != nil {
		return nil, err
	}

	return models.NewGameResponse(g.State()), nil
}

func (h *Handler) handleState(req *Incoming) (any, error) {
	g, err := h.loadGame(req)
	if err != nil {
		return nil, err
	}

	return models.NewGameResponse(g.State()), nil
}

func (h *Handler) handleMove(req *Incoming) (any, error) {
	var reqData MoveRequest
	if err := unmarshalData(req, &reqData); err != nil {
		return nil, err
	}

	move, err := models.MovePayload{Move: reqData.Move}.Validate()
	if err != nil {
		return nil, err
	}

	g, err := h.services.Games.GetString(reqData.GameID)
	if err != nil {
		return nil, err
	}

	if err = g.Play(move); err != nil {
		return nil, err
	}

	return models.NewGameResponse(g.State()), nil
}

func (h *Handler) handlePass(req *Incoming) (any, error) {
	g, err := h.loadGame(req)
	if err != nil {
		return nil, err
	}

	if err = g.Pass(); err != nil {
		return nil, err
	}

	return models.NewGameResponse(g.State()), nil
}

func (h *Handler) handleComputerMove(req *Incoming) (any, error) {
	g, err := h.loadGame(req)
	if err != nil {
		return nil, err
	}

	move, ok, err := g.PlayComputer()
	if err != nil {
		return nil, err
	}

	response := models.ComputerMoveResponse{
		Passed: !ok,
		Game:   models.NewGameResponse(g.State()),
	}
	if ok {
		response.Move = move.String()
	}

	return response, nil
}

func (h *Handler) handleUndo(req *Incoming) (any, error) {
	g, err := h.loadGame(req)
	if err != nil {
		return nil, err
	}

	g.Undo()

	return models.NewGameResponse(g.State()), nil
}
