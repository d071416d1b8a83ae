package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/lgbarn/chesscore-go/internal/analysis"
)

// wsRequest is one request over a WebSocket connection. Op is either
// "analyze" (FEN only) or "move" (FEN plus a long algebraic move).
type wsRequest struct {
	Op   string `json:"op"`
	FEN  string `json:"fen"`
	Move string `json:"move,omitempty"`
}

type wsResponse struct {
	FEN    string           `json:"fen,omitempty"`
	Report *analysis.Report `json:"report,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// wsHandler runs a request/response loop per connection. Bad requests
// produce an error response; only a closed or broken connection ends
// the loop.
func (app *Application) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := app.upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	fmt.Printf("New websocket connection from %s\n", conn.RemoteAddr())
	go func() {
		defer conn.Close()
		for {
			_, messageJSON, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var req wsRequest
			if err := json.Unmarshal(messageJSON, &req); err != nil {
				app.writeWS(conn, wsResponse{Error: fmt.Sprintf("decoding request: %v", err)})
				continue
			}
			app.writeWS(conn, app.safeHandleWSRequest(req))
		}
	}()
}

// safeHandleWSRequest converts a panic while serving one request into
// an error response, so a single bad message cannot take down the
// process.
func (app *Application) safeHandleWSRequest(req wsRequest) (resp wsResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = wsResponse{Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()
	return app.handleWSRequest(req)
}

func (app *Application) handleWSRequest(req wsRequest) wsResponse {
	switch req.Op {
	case "analyze":
		report, err := analysis.Analyze(req.FEN)
		if err != nil {
			return wsResponse{Error: err.Error()}
		}
		return wsResponse{FEN: report.FEN, Report: report}
	case "move":
		resp, err := playMove(moveRequest{FEN: req.FEN, Move: req.Move})
		if err != nil {
			return wsResponse{Error: err.Error()}
		}
		return wsResponse{FEN: resp.FEN, Report: resp.Report}
	default:
		return wsResponse{Error: fmt.Sprintf("unknown op %q", req.Op)}
	}
}

func (app *Application) writeWS(conn *websocket.Conn, resp wsResponse) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	_ = conn.WriteMessage(websocket.TextMessage, payload)
}
