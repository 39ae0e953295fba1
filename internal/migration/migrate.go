// Package migration keeps the schema in step with the domain models.
package migration

import (
	"gorm.io/gorm"

	"github.com/smallbiznis/docpress/internal/events"
	templatedomain "github.com/smallbiznis/docpress/internal/template/domain"
)

// RunMigrations applies the schema for every owned table.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&templatedomain.Template{},
		&events.DocumentEvent{},
	)
}
