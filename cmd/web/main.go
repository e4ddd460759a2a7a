package main

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tomz197/starfall/internal/config"
	"github.com/tomz197/starfall/internal/store"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "web"})

	settings, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}
	logger.SetLevel(settings.Level())

	host := config.GetEnv("WEB_HOST", settings.Web.Host)
	port := config.GetEnv("WEB_PORT", settings.Web.Port)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", settings.Web.DisplayHost)

	var scores store.HighScoreStore = &store.Memory{}
	if settings.HighScore != "" {
		scores = store.NewFileStore(settings.HighScore)
	}

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "addr", fmt.Sprintf("http://%s", addr))
	if err := http.ListenAndServe(addr, newMux(sshHost, scores, logger)); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// highScoreResponse is the body of /api/highscore.
type highScoreResponse struct {
	Score int  `json:"score"`
	Set   bool `json:"set"`
}

func newMux(sshHost string, scores store.HighScoreStore, logger *log.Logger) *http.ServeMux {
	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	mux.HandleFunc("GET /api/highscore", func(w http.ResponseWriter, r *http.Request) {
		var resp highScoreResponse
		score, err := scores.Load()
		switch {
		case err == nil:
			resp = highScoreResponse{Score: score, Set: true}
		case errors.Is(err, store.ErrNoHighScore):
		default:
			logger.Error("load high score", "err", err)
			http.Error(w, "high score unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})
	return mux
}
