package repository

import (
	"github.com/jibli-app/jibli-backend/internal/adapter/storage"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}
