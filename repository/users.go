package repository

import (
	"context"

	"hotelinfo/models"

	"gorm.io/gorm/clause"
)

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// UpsertUser inserts the user or refreshes the stored credentials and role.
func (r *Repository) UpsertUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "first_name", "last_name", "role", "updated_at"}),
	}).Create(user).Error
}
