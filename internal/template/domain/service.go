package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/smallbiznis/docpress/internal/render"
)

type ListRequest struct {
	Kind      string `form:"kind"`
	IsDefault *bool  `form:"is_default"`
}

type CreateRequest struct {
	Kind      string           `json:"kind"`
	Name      string           `json:"name"`
	IsDefault bool             `json:"is_default"`
	Elements  []render.Element `json:"elements"`
}

type UpdateRequest struct {
	ID       string            `json:"id"`
	Name     *string           `json:"name"`
	Elements *[]render.Element `json:"elements"`
}

// ElementPatch carries partial updates for one element; nil fields are left
// untouched.
type ElementPatch struct {
	Content    *string  `json:"content"`
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
	Width      *float64 `json:"width"`
	Height     *float64 `json:"height"`
	FontSize   *float64 `json:"font_size"`
	FontWeight *string  `json:"font_weight"`
	Color      *string  `json:"color"`
}

type Response struct {
	ID        string           `json:"id"`
	OrgID     int64            `json:"org_id"`
	Kind      Kind             `json:"kind"`
	Name      string           `json:"name"`
	IsDefault bool             `json:"is_default"`
	Elements  []render.Element `json:"elements"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
	SetDefault(ctx context.Context, id string) (*Response, error)
	AddElement(ctx context.Context, id string, element render.Element) (*Response, error)
	UpdateElement(ctx context.Context, id, elementID string, patch ElementPatch) (*Response, error)
	RemoveElement(ctx context.Context, id, elementID string) (*Response, error)
	FindDefault(ctx context.Context, kind Kind) (*Template, error)
}

func ParseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

var (
	ErrInvalidID         = errors.New("invalid_id")
	ErrInvalidName       = errors.New("invalid_name")
	ErrInvalidElement    = errors.New("invalid_element")
	ErrDuplicateElement  = errors.New("duplicate_element_id")
	ErrElementNotFound   = errors.New("element_not_found")
	ErrNotFound          = errors.New("not_found")
	ErrNoDefaultTemplate = errors.New("no_default_template")
)
