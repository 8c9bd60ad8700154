package server

import (
	"fmt"
	"log"
	"net/http"

	"teamscore/internal/badges"
	"teamscore/internal/broadcast"
	"teamscore/internal/config"
	"teamscore/internal/db"
	"teamscore/internal/directory"
	"teamscore/internal/events"
	"teamscore/internal/ledger"
	"teamscore/internal/rank"
	"teamscore/internal/wshub"
)

func Run() error {
	appCfg := config.Load()

	catalog := badges.Default()

	// Optional database connection
	var database *db.DB
	if appCfg.DatabaseURL != "" {
		conn, err := db.Connect(appCfg.DatabaseURL)
		if err != nil {
			log.Printf("[DB] Failed to connect: %v (running without database)\n", err)
		} else {
			if err := conn.Migrate(); err != nil {
				return fmt.Errorf("migrating database: %w", err)
			}
			database = conn

			overrides, err := database.LoadBadgeOverrides()
			if err != nil {
				log.Printf("[DB] LoadBadgeOverrides error: %v\n", err)
			} else if len(overrides) > 0 {
				catalog = catalog.Merge(overrides)
				log.Printf("[DB] Applied %d badge overrides\n", len(overrides))
			}
		}
	} else {
		log.Println("[DB] DATABASE_URL not set, running without database")
	}

	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("invalid badge catalog: %w", err)
	}

	store := ledger.NewStore(catalog)
	dir := directory.NewStore()

	if database != nil {
		scores, err := database.LoadScores()
		if err != nil {
			log.Printf("[DB] LoadScores error: %v\n", err)
		} else {
			store.Load(scores)
			log.Printf("[DB] Loaded %d user scores\n", len(scores))
		}
		members, err := database.ListMembers()
		if err != nil {
			log.Printf("[DB] ListMembers error: %v\n", err)
		} else {
			dir.Load(members)
		}
		store.Persist = database
	}

	bus := events.NewBus()

	srv := &Server{
		Catalog:     catalog,
		Ledger:      store,
		Ranks:       &rank.Builder{Ledger: store, Resolver: dir},
		Directory:   dir,
		Bus:         bus,
		Broadcaster: broadcast.NewBroadcaster(bus),
		Hub:         wshub.NewHub(),
		DB:          database,
		Limit:       appCfg.LeaderboardLimit,
	}

	mux := http.NewServeMux()
	srv.addRoutes(mux)

	addr := "0.0.0.0:" + appCfg.Port
	fmt.Printf("Server listening on http://localhost:%s\n", appCfg.Port)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) addRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /badges", s.handleCatalog)
	mux.HandleFunc("GET /users/{id}/score", s.handleUserScore)
	mux.HandleFunc("POST /users/{id}/stats", s.handleUpdateStats)
	mux.HandleFunc("GET /users/{id}/badges", s.handleUserBadges)
	mux.HandleFunc("GET /users/{id}/badges/available", s.handleAvailableBadges)
	mux.HandleFunc("GET /users/{id}/progress", s.handleProgress)
	mux.HandleFunc("GET /leaderboard", s.handleLeaderboard)
	mux.HandleFunc("GET /stats", s.handleGlobalStats)
	mux.HandleFunc("GET /level", s.handleLevel)
	mux.HandleFunc("POST /members", s.handleCreateMember)
	mux.HandleFunc("GET /members", s.handleMembers)
	mux.HandleFunc("GET /notifications", s.handleNotifications)
	mux.HandleFunc("GET /live", s.handleLive)
}
