package api

import (
	"github.com/go-playground/validator/v10"

	"dziennik-posilkow/internal/config"
	"dziennik-posilkow/internal/database"
	"dziennik-posilkow/internal/session"
)

type Server struct {
	config   *config.Config
	store    *database.Store
	sessions *session.Resolver
	validate *validator.Validate
}

func NewServer(cfg *config.Config, store *database.Store, sessions *session.Resolver) *Server {
	return &Server{
		config:   cfg,
		store:    store,
		sessions: sessions,
		validate: validator.New(),
	}
}
