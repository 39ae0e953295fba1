package seed

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/smallbiznis/docpress/internal/template/domain"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Template{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestEnsureDefaultTemplatesCreatesAllKinds(t *testing.T) {
	db := setupSeedDB(t)

	if err := EnsureDefaultTemplates(db, 1); err != nil {
		t.Fatalf("seed: %v", err)
	}

	for _, kind := range []domain.Kind{domain.KindInvoice, domain.KindQuote, domain.KindStatement} {
		var tmpl domain.Template
		err := db.Where("org_id = ? AND kind = ? AND is_default = ?", 1, kind, true).First(&tmpl).Error
		if err != nil {
			t.Fatalf("default %s missing: %v", kind, err)
		}
		if tmpl.Name != "Standard" {
			t.Fatalf("name: %q", tmpl.Name)
		}
		elements, err := tmpl.ElementList()
		if err != nil {
			t.Fatalf("elements: %v", err)
		}
		if len(elements) == 0 {
			t.Fatalf("empty layout for %s", kind)
		}
	}
}

func TestEnsureDefaultTemplatesIsIdempotent(t *testing.T) {
	db := setupSeedDB(t)

	if err := EnsureDefaultTemplates(db, 1); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := EnsureDefaultTemplates(db, 1); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int64
	if err := db.Model(&domain.Template{}).Where("org_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 templates, got %d", count)
	}
}

func TestEnsureDefaultTemplatesScopesPerOrg(t *testing.T) {
	db := setupSeedDB(t)

	if err := EnsureDefaultTemplates(db, 1); err != nil {
		t.Fatalf("seed org 1: %v", err)
	}
	if err := EnsureDefaultTemplates(db, 2); err != nil {
		t.Fatalf("seed org 2: %v", err)
	}

	var count int64
	if err := db.Model(&domain.Template{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 6 {
		t.Fatalf("expected 6 templates across orgs, got %d", count)
	}
}
