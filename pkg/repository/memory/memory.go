package memory

import (
	"sync"

	"github.com/m-mizutani/devjournal/pkg/domain/interfaces"
	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
)

// New creates a new in-memory repository
func New() interfaces.Repository {
	return &journalRepository{
		activities: make(map[types.UserID][]*model.Activity),
		urls:       make(map[types.UserID]map[string]struct{}),
		settings:   make(map[types.UserID]*model.UserSettings),
		summaries:  make(map[types.UserID][]*model.Summary),
	}
}

type journalRepository struct {
	mu         sync.RWMutex
	activities map[types.UserID][]*model.Activity
	urls       map[types.UserID]map[string]struct{}
	settings   map[types.UserID]*model.UserSettings
	summaries  map[types.UserID][]*model.Summary
}
