package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"pikxora.backend/internal/domain/entities"
	domainerrors "pikxora.backend/internal/domain/errors"
	"pikxora.backend/internal/infrastructure/models"
)

type ConnectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

func (r *ConnectionRepository) Create(ctx context.Context, conn *entities.Connection) error {
	m := r.toModel(conn)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	conn.CreatedAt = m.CreatedAt
	return nil
}

func (r *ConnectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Connection, error) {
	var m models.Connection
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ConnectionRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entities.Connection, error) {
	var ms []models.Connection
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", profileID, profileID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Connection, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ConnectionRepository) GetBetween(ctx context.Context, senderID, receiverID uuid.UUID) (*entities.Connection, error) {
	var m models.Connection
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ConnectionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ConnectionStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Connection{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ConnectionRepository) toEntity(m *models.Connection) *entities.Connection {
	return &entities.Connection{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Message:    null.StringFromPtr(m.Message),
		Status:     entities.ConnectionStatus(m.Status),
		CreatedAt:  m.CreatedAt,
	}
}

func (r *ConnectionRepository) toModel(e *entities.Connection) *models.Connection {
	return &models.Connection{
		ID:         e.ID,
		SenderID:   e.SenderID,
		ReceiverID: e.ReceiverID,
		Message:    e.Message.Ptr(),
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
	}
}
