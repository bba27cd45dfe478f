// Package web serves the bot's health and status endpoints.
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/parallel-yonder/yonder/bot"
	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/common/log"
)

type Server struct {
	bot *bot.Bot

	started time.Time
}

// New starts the HTTP server on the configured port. The port comes
// from the web section of the config file and defaults to 8080.
func New(b *bot.Bot) *Server {
	s := &Server{bot: b, started: time.Now()}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.health)
	r.Get("/status", s.status)

	port := b.Config.Web.Port
	if port == "" {
		port = "8080"
	}

	go func() {
		log.Infof("web server listening on :%v", port)

		err := http.ListenAndServe(":"+port, r)
		if err != nil {
			log.Errorf("running web server: %v", err)
		}
	}()

	return s
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	err := s.bot.DB.Pool.Ping(r.Context())
	if err != nil {
		log.Errorf("pinging database: %v", err)
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, map[string]any{"ok": false})
		return
	}

	render.JSON(w, r, map[string]any{"ok": true})
}

type statusResponse struct {
	Version    string `json:"version"`
	Uptime     string `json:"uptime"`
	Characters int64  `json:"characters"`
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	characters, err := s.bot.DB.CharacterCount(s.bot.Config.Bot.GuildID)
	if err != nil {
		log.Errorf("getting character count: %v", err)
	}

	render.JSON(w, r, statusResponse{
		Version:    common.Version(),
		Uptime:     time.Since(s.started).Round(time.Second).String(),
		Characters: characters,
	})
}
