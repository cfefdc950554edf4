package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"finadmin/internal/model"
	"finadmin/internal/repository"
	"finadmin/internal/websocket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommandResult is the descriptor every write operation returns to its
// caller: the audit command id plus the identifiers of what was touched.
type CommandResult struct {
	CommandID     uuid.UUID `json:"commandId"`
	ResourceID    int64     `json:"resourceId"`
	SubResourceID *int64    `json:"subResourceId,omitempty"`
	ClientID      *int64    `json:"clientId,omitempty"`
	// ResourceIDs carries every id created by a bulk operation.
	// ResourceID then reports the last one as a compatibility shim.
	ResourceIDs []int64 `json:"resourceIds,omitempty"`
}

type userIDKey struct{}

// ContextWithUserID records the authenticated operator so command-log
// rows can attribute the write.
func ContextWithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

func userIDFromContext(ctx context.Context) *uuid.UUID {
	if id, ok := ctx.Value(userIDKey{}).(uuid.UUID); ok {
		return &id
	}
	return nil
}

type CommandLogResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Payload    string `json:"payload"`
	CreatedAt  string `json:"created_at"`
}

// CommandLogService assigns command ids and records write commands for
// audit. Record participates in the caller's transaction, so a rolled
// back mutation leaves no audit row behind.
type CommandLogService interface {
	Record(ctx context.Context, action string, entityID int64, entityName string, payload any) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]CommandLogResponse, int64, error)
}

type commandLogService struct {
	db  *gorm.DB
	hub *websocket.Hub
}

// NewCommandLogService creates a new CommandLogService. hub may be nil
// when no event feed is wired (tests, CLI tooling).
func NewCommandLogService(db *gorm.DB, hub *websocket.Hub) CommandLogService {
	return &commandLogService{db: db, hub: hub}
}

func (s *commandLogService) Record(ctx context.Context, action string, entityID int64, entityName string, payload any) (uuid.UUID, error) {
	body := "{}"
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to serialize command payload: %w", err)
		}
		body = string(raw)
	}

	entry := model.CommandLog{
		ID:         uuid.New(),
		UserID:     userIDFromContext(ctx),
		Action:     action,
		EntityID:   fmt.Sprint(entityID),
		EntityName: entityName,
		Payload:    body,
	}
	if err := repository.GetDB(ctx, s.db).Create(&entry).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to record command: %w", err)
	}

	if s.hub != nil {
		s.hub.Publish(websocket.Event{
			CommandID: entry.ID.String(),
			Action:    action,
			EntityID:  entry.EntityID,
			At:        time.Now().UTC(),
		})
	}

	return entry.ID, nil
}

func (s *commandLogService) List(ctx context.Context, page, limit int) ([]CommandLogResponse, int64, error) {
	var entries []model.CommandLog
	var total int64

	if err := s.db.WithContext(ctx).Model(&model.CommandLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := s.db.WithContext(ctx).Preload("User").Order("created_at desc").Offset(offset).Limit(limit).Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	res := make([]CommandLogResponse, 0, len(entries))
	for _, e := range entries {
		username := "System"
		userID := ""
		if e.User != nil {
			username = e.User.Username
		}
		if e.UserID != nil {
			userID = e.UserID.String()
		}

		res = append(res, CommandLogResponse{
			ID:         e.ID.String(),
			UserID:     userID,
			Username:   username,
			Action:     e.Action,
			EntityID:   e.EntityID,
			EntityName: e.EntityName,
			Payload:    e.Payload,
			CreatedAt:  e.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, total, nil
}
