package controllers

import (
	"context"
	"sync"
	"time"

	"github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/model"
	"github.com/rs/zerolog/log"
)

// Groups change administratively and rarely, so the post form's group
// selector reads from a cached copy refreshed on an interval.
const groupRefreshInterval = time.Minute * 20

type GroupController struct {
	db              db.GroupDatabase
	cachedGroups    []*model.Group
	cachedGroupLock sync.Mutex
	refreshTicker   *time.Ticker
}

func NewGroupController(ctx context.Context, groupDb db.GroupDatabase) (*GroupController, error) {
	controller := &GroupController{
		db: groupDb,
	}
	if err := controller.refreshGroups(ctx); err != nil {
		return nil, err
	}

	refreshTicker := time.NewTicker(groupRefreshInterval)
	controller.refreshTicker = refreshTicker
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("recovered", r).Msg("recovered while refreshing cached groups")
			}
		}()
		for range refreshTicker.C {
			controller.attemptToRefreshGroups(ctx)
		}
	}()

	return controller, nil
}

// Groups returns the cached group list ordered by title.
func (gc *GroupController) Groups() []*model.Group {
	gc.cachedGroupLock.Lock()
	defer gc.cachedGroupLock.Unlock()
	return gc.cachedGroups
}

func (gc *GroupController) CreateGroup(ctx context.Context, req *db.CreateGroup) (int64, error) {
	groupId, err := gc.db.CreateGroup(ctx, req)
	if err != nil {
		return 0, err
	}
	go gc.attemptToRefreshGroups(ctx)
	return groupId, nil
}

func (gc *GroupController) attemptToRefreshGroups(ctx context.Context) {
	if err := gc.refreshGroups(ctx); err != nil {
		log.Error().Err(err).Msg("an error occurred while refreshing cached groups")
	}
}

func (gc *GroupController) refreshGroups(ctx context.Context) error {
	groups, err := gc.db.Groups(ctx)
	if err != nil {
		return err
	}
	gc.cachedGroupLock.Lock()
	defer gc.cachedGroupLock.Unlock()
	gc.cachedGroups = groups
	return nil
}
