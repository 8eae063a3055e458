package mysql

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/hagio-gakuto/user-directory/infrastructure/persistence/mysql/po"
)

// AutoMigrate creates or updates the schema for every aggregate.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&po.UserPO{}, &po.SearchConditionPO{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
