package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mhess/twophase/internal/cube"
)

type SolveRequest struct {
	Facelets  string `json:"facelets"`
	MaxLength int    `json:"max_length"`
}

type SolveResponse struct {
	RequestID string `json:"request_id"`
	Solution  string `json:"solution"`
	Moves     int    `json:"moves"`
	Time      string `json:"time"`
}

type VerifyRequest struct {
	Facelets string `json:"facelets"`
}

type VerifyResponse struct {
	RequestID string `json:"request_id"`
	Code      int    `json:"code"`
	Message   string `json:"message"`
}

type RandomResponse struct {
	RequestID string `json:"request_id"`
	Facelets  string `json:"facelets"`
}

type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

func writeError(w http.ResponseWriter, requestID string, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{RequestID: requestID, Error: err.Error()})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	const html = `<!DOCTYPE html>
<html>
<head>
    <title>Two-Phase Cube Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>Two-Phase Cube Solver</h1>
    <div class="container">
        <form id="solveForm">
            <div>
                <label>Facelets (54 chars, URFDLB):</label><br>
                <input type="text" id="facelets" style="width: 600px;"
                       value="UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB">
            </div>
            <button type="submit">Solve</button>
            <button type="button" id="randomBtn">Random Cube</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        document.getElementById('randomBtn').addEventListener('click', async () => {
            const response = await fetch('/api/random');
            const result = await response.json();
            document.getElementById('facelets').value = result.facelets;
        });

        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const facelets = document.getElementById('facelets').value;
            const resultDiv = document.getElementById('result');
            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ facelets, max_length: 25 })
                });
                const result = await response.json();
                if (!response.ok) {
                    resultDiv.innerHTML = '<p style="color:red;">' + result.error + '</p>';
                } else {
                    resultDiv.innerHTML =
                        '<h3>Solution:</h3><p>' + result.solution + '</p>' +
                        '<p><strong>Moves:</strong> ' + result.moves + '</p>' +
                        '<p><strong>Time:</strong> ' + result.time + '</p>';
                }
                resultDiv.style.display = 'block';
            } catch (error) {
                resultDiv.innerHTML = '<p style="color:red;">' + error.message + '</p>';
                resultDiv.style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, requestID, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
		return
	}
	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = 25
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	start := time.Now()
	moves, err := cube.Solve(ctx, s.tables, req.Facelets, maxLength)
	elapsed := time.Since(start)
	if err != nil {
		writeError(w, requestID, http.StatusBadRequest, err)
		return
	}

	optimized := cube.OptimizeMoves(moves)
	resp := SolveResponse{
		RequestID: requestID,
		Solution:  cube.FormatMoves(optimized),
		Moves:     len(optimized),
		Time:      elapsed.String(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, requestID, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
		return
	}

	code := cube.Verify(req.Facelets)
	resp := VerifyResponse{
		RequestID: requestID,
		Code:      int(code),
		Message:   code.String(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	resp := RandomResponse{
		RequestID: uuid.NewString(),
		Facelets:  cube.RandomCube(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
