// Package handlers maps the Chatter Box REST routes onto the document
// store. Every response uses the same envelope:
//
//	{ success, message?, result?, count?, error? }
package handlers

import (
	"go.uber.org/zap"

	"chatterbox/config"
	"chatterbox/store"
)

type Handler struct {
	store store.Store
	cfg   config.Config
	log   *zap.Logger
}

func New(db store.Store, cfg config.Config, log *zap.Logger) *Handler {
	return &Handler{store: db, cfg: cfg, log: log}
}
