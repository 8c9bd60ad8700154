package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"teamscore/internal/badges"
	"teamscore/internal/broadcast"
	"teamscore/internal/db"
	"teamscore/internal/directory"
	"teamscore/internal/events"
	"teamscore/internal/ledger"
	"teamscore/internal/rank"
	"teamscore/internal/wshub"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

type Server struct {
	Catalog     badges.Catalog
	Ledger      *ledger.Store
	Ranks       *rank.Builder
	Directory   *directory.Store
	Bus         *events.Bus
	Broadcaster *broadcast.Broadcaster
	Hub         *wshub.Hub
	DB          *db.DB // nil if no database configured
	Limit       int    // default leaderboard size
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	respondData(w, s.Catalog)
}

func (s *Server) handleUserScore(w http.ResponseWriter, r *http.Request) {
	respondData(w, s.Ledger.Get(r.PathValue("id")))
}

// updateResult pairs the post-update record with the badges this particular
// update unlocked.
type updateResult struct {
	Score    ledger.Score    `json:"score"`
	Unlocked []badges.Unlock `json:"unlocked"`
}

func (s *Server) handleUpdateStats(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	var delta ledger.StatsDelta
	if err := json.NewDecoder(r.Body).Decode(&delta); err != nil {
		respondError(w, http.StatusBadRequest, "invalid stats payload")
		return
	}

	score, unlocks := s.Ledger.UpdateStats(userID, delta)

	for _, u := range unlocks {
		ev := events.UnlockEvent{
			UserID:      userID,
			BadgeID:     u.Badge.ID,
			BadgeName:   u.Badge.Name,
			Points:      u.Badge.Points,
			TotalPoints: score.TotalPoints,
			Level:       score.Level,
			UnlockedAt:  u.UnlockedAt,
		}
		select {
		case s.Bus.Unlocks <- ev:
		default:
			log.Println("[Events] Unlock bus full, dropping event")
		}

		s.Hub.Broadcast(wshub.ServerMessage{
			Type:        "unlock",
			UserID:      userID,
			BadgeID:     u.Badge.ID,
			BadgeName:   u.Badge.Name,
			Points:      u.Badge.Points,
			TotalPoints: score.TotalPoints,
			Level:       score.Level,
		})
	}
	if len(unlocks) > 0 {
		// Rankings may have shifted; tell dashboards to refetch.
		s.Hub.Broadcast(wshub.ServerMessage{Type: "leaderboard"})
	}

	if unlocks == nil {
		unlocks = []badges.Unlock{}
	}
	respondData(w, updateResult{Score: score, Unlocked: unlocks})
}

func (s *Server) handleUserBadges(w http.ResponseWriter, r *http.Request) {
	respondData(w, s.Ledger.UserBadges(r.PathValue("id")))
}

func (s *Server) handleAvailableBadges(w http.ResponseWriter, r *http.Request) {
	respondData(w, s.Ledger.AvailableBadges(r.PathValue("id")))
}

type badgeProgress struct {
	Badge   badges.Badge `json:"badge"`
	Percent int          `json:"percent"`
}

// handleProgress returns completion estimates for every badge the user has
// not yet unlocked.
func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	score := s.Ledger.Get(userID)

	available := s.Ledger.AvailableBadges(userID)
	out := make([]badgeProgress, 0, len(available))
	for _, b := range available {
		out = append(out, badgeProgress{Badge: b, Percent: badges.Progress(b, score.Stats)})
	}
	respondData(w, out)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := s.Limit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	respondData(w, s.Ranks.Leaderboard(limit))
}

func (s *Server) handleGlobalStats(w http.ResponseWriter, r *http.Request) {
	respondData(w, s.Ranks.GlobalStats())
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	points, err := strconv.Atoi(r.URL.Query().Get("points"))
	if err != nil || points < 0 {
		respondError(w, http.StatusBadRequest, "invalid points")
		return
	}
	respondData(w, map[string]int{"level": badges.Level(points)})
}

func (s *Server) handleCreateMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid member payload")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	member := s.Directory.Add(req.ID, req.Name)

	if s.DB != nil {
		if err := s.DB.UpsertMember(*member); err != nil {
			log.Printf("[DB] UpsertMember error: %v\n", err)
		}
	}

	respondData(w, member)
}

func (s *Server) handleMembers(w http.ResponseWriter, r *http.Request) {
	respondData(w, s.Directory.GetList())
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	msgChan := s.Broadcaster.Subscribe()
	defer s.Broadcaster.Unsubscribe(msgChan)

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-msgChan:
			fmt.Fprintf(w, "event: %s\n", msg.Event)
			for _, line := range strings.Split(msg.Msg, "\n") {
				fmt.Fprintf(w, "data: %s\n", line)
			}
			fmt.Fprint(w, "\n")
			flusher.Flush()
		}
	}
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("[WS] Accept error: %v\n", err)
		return
	}

	client := &wshub.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 16),
	}
	s.Hub.Register(client)
	defer s.Hub.Unregister(client.ID)

	// Dashboards only listen; CloseRead surfaces disconnects via ctx.
	ctx := conn.CloseRead(r.Context())
	client.WritePump(ctx)
	conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if s.DB != nil {
		if err := s.DB.Ping(); err != nil {
			status = "db_error"
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, `{"status":"%s","error":"%s"}`, status, err.Error())
			return
		}
	}
	fmt.Fprintf(w, `{"status":"%s"}`, status)
}
