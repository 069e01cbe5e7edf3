package server

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	v1 "github.com/vqdung71104/student-management-sub000/internal/api/v1"
	"github.com/vqdung71104/student-management-sub000/internal/auth"
	"github.com/vqdung71104/student-management-sub000/internal/config"
	"github.com/vqdung71104/student-management-sub000/internal/importer"
	"github.com/vqdung71104/student-management-sub000/internal/model"
	"github.com/vqdung71104/student-management-sub000/internal/store"
)

// Server is the portal HTTP server.
type Server struct {
	router *gin.Engine
	store  *store.Store
	cfg    *config.AppConfig
}

// NewServer wires the store, session tokens, import coordinator and API
// routes from configuration.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare data dir: %w", err)
	}

	sqliteStore, err := store.New(filepath.Join(dataDir, "portal.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := seedAdmin(sqliteStore); err != nil {
		sqliteStore.Close()
		return nil, err
	}

	tokens := auth.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	// The importer submits through the HTTP API like any other client. With
	// no backend configured it targets this server's own listener.
	importCfg := cfg.Import
	if importCfg.BackendBaseURL == "" {
		importCfg.BackendBaseURL = fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
	}
	coordinator := importer.NewCoordinator(sqliteStore, importCfg)

	handler := v1.NewHandler(sqliteStore, tokens, coordinator, filepath.Join(dataDir, "uploads"))

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		cfg:    cfg,
	}
	s.setupRoutes(handler)

	return s, nil
}

func (s *Server) setupRoutes(handler *v1.Handler) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api/v1")
	{
		handler.RegisterRoutes(api)
	}
}

// seedAdmin creates the initial admin account when the users table is empty,
// so a fresh install can log in.
func seedAdmin(st *store.Store) error {
	if _, err := st.FindUserByIdentifier("admin@portal.local"); err == nil {
		return nil
	}

	password := os.Getenv("PORTAL_ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
		logrus.Warn("seeding admin with default password, set PORTAL_ADMIN_PASSWORD")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = st.CreateUser(&model.User{
		Email:        "admin@portal.local",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		IsActive:     true,
	})
	if err != nil && !store.IsDuplicate(err) {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}

// Run starts the HTTP listener.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the server's resources.
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore exposes the store for tests.
func (s *Server) GetStore() *store.Store {
	return s.store
}
