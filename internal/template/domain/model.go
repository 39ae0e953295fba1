package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"

	"github.com/smallbiznis/docpress/internal/render"
)

// Kind identifies the document family a template renders.
type Kind string

const (
	KindInvoice   Kind = "invoice"
	KindQuote     Kind = "quote"
	KindStatement Kind = "statement"
)

// ErrUnknownKind is returned for any document kind outside the supported set.
var ErrUnknownKind = errors.New("unknown_document_kind")

// ParseKind validates a raw document kind.
func ParseKind(raw string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindInvoice:
		return KindInvoice, nil
	case KindQuote:
		return KindQuote, nil
	case KindStatement:
		return KindStatement, nil
	default:
		return "", ErrUnknownKind
	}
}

// Title returns the display title drawn in the document header.
func (k Kind) Title() string {
	return strings.ToUpper(string(k))
}

// Template owns the ordered element list for one document kind. Paint order
// equals list order. Edits overwrite in place; there is no versioning.
type Template struct {
	ID        snowflake.ID   `gorm:"primaryKey" json:"id"`
	OrgID     int64          `gorm:"not null;index" json:"org_id"`
	Kind      Kind           `gorm:"type:text;not null;index" json:"kind"`
	Name      string         `gorm:"type:text;not null" json:"name"`
	IsDefault bool           `gorm:"not null;default:false" json:"is_default"`
	Elements  datatypes.JSON `gorm:"type:jsonb" json:"elements"`
	CreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Template) TableName() string { return "document_templates" }

// ElementList decodes the stored elements preserving order.
func (t *Template) ElementList() ([]render.Element, error) {
	if len(t.Elements) == 0 {
		return nil, nil
	}
	var elements []render.Element
	if err := json.Unmarshal(t.Elements, &elements); err != nil {
		return nil, err
	}
	return elements, nil
}

// SetElements encodes the element list back onto the row.
func (t *Template) SetElements(elements []render.Element) error {
	encoded, err := json.Marshal(elements)
	if err != nil {
		return err
	}
	t.Elements = datatypes.JSON(encoded)
	return nil
}
