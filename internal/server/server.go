package server

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"ledger-admin/internal/auth"
	"ledger-admin/internal/config"
	"ledger-admin/internal/handler"
	"ledger-admin/internal/repository"
	"ledger-admin/internal/service"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
)

// Server represents the HTTP server
type Server struct {
	router *mux.Router
	server *http.Server
	db     *sql.DB
	logger *slog.Logger
	port   string
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	// Refuse to run with an empty signing key; anyone could forge an
	// admin token against it.
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT secret must not be empty")
	}

	db, err := sql.Open("postgres", cfg.GetDBConnectionString())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if logger != nil {
		logger.Info("Successfully connected to database")
	}

	// Initialize store (Unit of Work)
	store := repository.NewStore(db, logger)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	// Initialize services
	accountService := service.NewAccountService(store, logger)
	transactionService := service.NewTransactionService(store, logger)
	adminService := service.NewAdminService(store, tokens, logger)

	// Bootstrap admin; the registration flow is outside this service.
	if err := adminService.EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		db.Close()
		return nil, err
	}

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountService)
	transactionHandler := handler.NewTransactionHandler(transactionService, accountService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Setup router
	router := mux.NewRouter()
	router.Use(loggingMiddleware(logger))

	// Public routes
	router.HandleFunc("/login", adminHandler.Login).Methods("POST")
	router.HandleFunc("/health", handler.Health(db)).Methods("GET")

	// Back-office routes; every one requires an authenticated admin.
	protected := router.NewRoute().Subrouter()
	protected.Use(handler.RequireAuth(tokens))

	protected.HandleFunc("/", accountHandler.Overview).Methods("GET")
	protected.HandleFunc("/edit-user/{id}", accountHandler.ShowEditor).Methods("GET")
	protected.HandleFunc("/edit-user/{id}", accountHandler.UpdateAccount).Methods("POST")
	protected.HandleFunc("/delete-account/{id}", accountHandler.DeleteAccount).Methods("POST")
	protected.HandleFunc("/pending_deposit", transactionHandler.PendingDeposits).Methods("GET")
	protected.HandleFunc("/pending_withdrawal", transactionHandler.PendingWithdrawals).Methods("GET")
	protected.HandleFunc("/approve-deposit/{id}", transactionHandler.ApproveDeposit).Methods("POST")
	protected.HandleFunc("/deposit", transactionHandler.ShowDepositForm).Methods("GET")
	protected.HandleFunc("/deposit", transactionHandler.CreateDeposit).Methods("POST")
	protected.HandleFunc("/change-password", adminHandler.ChangePassword).Methods("POST")

	return &Server{
		router: router,
		db:     db,
		logger: logger,
	}, nil
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration", time.Since(start),
				"user_agent", r.UserAgent(),
			)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Start starts the HTTP server on the specified port
func (s *Server) Start(port string) (string, error) {
	// Create listener first to get actual port
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return "", err
	}

	addr := listener.Addr().(*net.TCPAddr)
	s.port = strconv.Itoa(addr.Port)

	s.server = &http.Server{
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if s.logger != nil {
		s.logger.Info("Starting server", "port", s.port)
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Error("Server failed to start", "error", err)
			}
		}
	}()

	return s.port, nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	if s.logger != nil {
		s.logger.Info("Shutting down server")
	}

	if s.db != nil {
		s.db.Close()
	}

	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// GetPort returns the port the server is listening on
func (s *Server) GetPort() string {
	return s.port
}

// GetBaseURL returns the base URL for the server
func (s *Server) GetBaseURL() string {
	return "http://localhost:" + s.port
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *mux.Router {
	return s.router
}

// StartServer starts the server with the given configuration
func StartServer(cfg *config.Config) (*Server, string, error) {
	// Port "0" means a test environment; keep its logs quiet.
	var logger *slog.Logger
	if cfg.ServerPort == "0" {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	server, err := NewServer(cfg, logger)
	if err != nil {
		return nil, "", err
	}

	port, err := server.Start(cfg.ServerPort)
	if err != nil {
		return nil, "", err
	}

	return server, port, nil
}
