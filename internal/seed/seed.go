// Package seed bootstraps the starter templates at startup.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/smallbiznis/docpress/internal/template/domain"
)

const defaultTemplateName = "Standard"

// EnsureDefaultTemplates creates the default starter template for every
// document kind that does not already have one for the org.
func EnsureDefaultTemplates(db *gorm.DB, orgID int64) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, kind := range []domain.Kind{domain.KindInvoice, domain.KindQuote, domain.KindStatement} {
			if err := ensureKindTx(ctx, tx, node, orgID, kind); err != nil {
				return err
			}
		}
		return nil
	})
}

func ensureKindTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, orgID int64, kind domain.Kind) error {
	var existing domain.Template
	err := tx.WithContext(ctx).
		Where("org_id = ? AND kind = ? AND is_default = ?", orgID, kind, true).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	now := time.Now().UTC()
	tmpl := domain.Template{
		ID:        node.Generate(),
		OrgID:     orgID,
		Kind:      kind,
		Name:      defaultTemplateName,
		IsDefault: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tmpl.SetElements(domain.DefaultLayout(kind)); err != nil {
		return err
	}
	return tx.WithContext(ctx).Create(&tmpl).Error
}
