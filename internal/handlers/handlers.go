package handlers

import (
	"fmt"
	"time"

	"followup/internal/config"
	"followup/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// Handler держит зависимости всех обработчиков: хранилище, логин/хэш
// оператора и часы (подменяются в тестах).
type Handler struct {
	Store        store.DealStore
	Operator     string
	PasswordHash []byte
	Now          func() time.Time
}

func New(s store.DealStore, cfg *config.Config) (*Handler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AppPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash operator password: %w", err)
	}

	return &Handler{
		Store:        s,
		Operator:     cfg.AppUsername,
		PasswordHash: hash,
		Now:          time.Now,
	}, nil
}
