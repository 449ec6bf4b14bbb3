package main

import (
	"codeberg.org/solari/bff/internal/accessgate"
	"codeberg.org/solari/bff/internal/auth"
	"codeberg.org/solari/bff/internal/backend"
	"codeberg.org/solari/bff/internal/config"
	"codeberg.org/solari/bff/internal/docstore"
	ws "codeberg.org/solari/bff/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	config    *config.Config
	db        *pgxpool.Pool // nil unless the postgres docstore is used
	store     docstore.Store
	directory *docstore.Directory
	access    *accessgate.DirectorySource
	evaluator *accessgate.Evaluator
	policy    accessgate.Policy
	backend   *backend.Client
	sessions  *auth.SessionStore
	hub       *ws.Hub
	router    *gin.Engine
}
