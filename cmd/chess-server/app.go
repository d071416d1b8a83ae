package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/chesscore-go/internal/analysis"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

func stdoutLogger(next http.Handler) http.Handler {
	return handlers.LoggingHandler(os.Stdout, next)
}

// Application routes position analysis and move application requests.
type Application struct {
	router   *mux.Router
	upgrader websocket.Upgrader
}

func NewApplication() *Application {
	app := &Application{
		router: mux.NewRouter(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	app.router.NotFoundHandler = stdoutLogger(http.HandlerFunc(notFoundHandler))
	app.router.Use(stdoutLogger)

	app.router.HandleFunc("/api/position", app.positionHandler).Methods(http.MethodGet)
	app.router.HandleFunc("/api/move", app.moveHandler).Methods(http.MethodPost)
	app.router.HandleFunc("/ws", app.wsHandler)
	return app
}

func (app *Application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app.router.ServeHTTP(w, r)
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "File Not Found", http.StatusNotFound)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// positionHandler analyzes the position in the fen query parameter.
func (app *Application) positionHandler(w http.ResponseWriter, r *http.Request) {
	fen := r.URL.Query().Get("fen")
	if fen == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing fen parameter"})
		return
	}
	report, err := analysis.Analyze(fen)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// moveRequest asks for move (long algebraic) to be played on the
// position given by fen.
type moveRequest struct {
	FEN  string `json:"fen"`
	Move string `json:"move"`
}

// moveResponse carries the successor position and its analysis.
type moveResponse struct {
	FEN    string           `json:"fen"`
	Report *analysis.Report `json:"report"`
}

// moveHandler applies a legal move to a position and returns the
// resulting position with its analysis.
func (app *Application) moveHandler(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("decoding request: %v", err)})
		return
	}
	resp, err := playMove(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func playMove(req moveRequest) (*moveResponse, error) {
	state, err := engine.ParseFEN(req.FEN)
	if err != nil {
		return nil, err
	}
	move, err := engine.FindMove(state, req.Move)
	if err != nil {
		return nil, err
	}
	engine.ApplyMove(state, move)
	engine.AdvanceTurn(state)

	report, err := analysis.AnalyzeState(state)
	if err != nil {
		return nil, err
	}
	return &moveResponse{FEN: engine.FormatFEN(state), Report: report}, nil
}
