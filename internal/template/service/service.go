package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smallbiznis/docpress/internal/config"
	"github.com/smallbiznis/docpress/internal/events"
	obscontext "github.com/smallbiznis/docpress/internal/observability/context"
	"github.com/smallbiznis/docpress/internal/render"
	"github.com/smallbiznis/docpress/internal/template/domain"
	"github.com/smallbiznis/docpress/internal/template/repository"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Repo   repository.Repository
	GenID  *snowflake.Node
	Outbox *events.Outbox `optional:"true"`
	Log    *zap.Logger
	Cfg    config.Config
}

type ServiceImpl struct {
	db           *gorm.DB
	repo         repository.Repository
	genID        *snowflake.Node
	outbox       *events.Outbox
	log          *zap.Logger
	defaultOrgID int64
}

// NewService constructs the template service.
func NewService(p Params) domain.Service {
	return &ServiceImpl{
		db:           p.DB,
		repo:         p.Repo,
		genID:        p.GenID,
		outbox:       p.Outbox,
		log:          p.Log,
		defaultOrgID: p.Cfg.DefaultOrgID,
	}
}

func (s *ServiceImpl) orgID(ctx context.Context) int64 {
	if orgID := obscontext.OrgIDFromContext(ctx); orgID != 0 {
		return orgID
	}
	return s.defaultOrgID
}

func (s *ServiceImpl) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	kind, err := domain.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	elements := req.Elements
	if len(elements) == 0 {
		elements = domain.DefaultLayout(kind)
	}
	if err := validateElements(elements); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tmpl := domain.Template{
		ID:        s.genID.Generate(),
		OrgID:     s.orgID(ctx),
		Kind:      kind,
		Name:      name,
		IsDefault: req.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tmpl.SetElements(elements); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tmpl.IsDefault {
			if err := s.repo.ClearDefault(ctx, tx, tmpl.OrgID, kind); err != nil {
				return err
			}
		}
		return s.repo.Insert(ctx, tx, &tmpl)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &tmpl, events.EventTemplateCreated)
	return toResponse(&tmpl)
}

func (s *ServiceImpl) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	templates, err := s.repo.List(ctx, s.db, s.orgID(ctx), req)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Response, 0, len(templates))
	for i := range templates {
		resp, err := toResponse(&templates[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *ServiceImpl) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	tmpl, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(tmpl)
}

func (s *ServiceImpl) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	tmpl, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		tmpl.Name = name
	}
	if req.Elements != nil {
		if err := validateElements(*req.Elements); err != nil {
			return nil, err
		}
		if err := tmpl.SetElements(*req.Elements); err != nil {
			return nil, err
		}
	}
	tmpl.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, tmpl); err != nil {
		return nil, err
	}
	s.publish(ctx, tmpl, events.EventTemplateUpdated)
	return toResponse(tmpl)
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	tmpl, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, s.db, tmpl.OrgID, tmpl.ID); err != nil {
		return err
	}
	s.publish(ctx, tmpl, events.EventTemplateDeleted)
	return nil
}

func (s *ServiceImpl) SetDefault(ctx context.Context, id string) (*domain.Response, error) {
	tmpl, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.ClearDefault(ctx, tx, tmpl.OrgID, tmpl.Kind); err != nil {
			return err
		}
		tmpl.IsDefault = true
		tmpl.UpdatedAt = time.Now().UTC()
		return s.repo.Update(ctx, tx, tmpl)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, tmpl, events.EventTemplateUpdated)
	return toResponse(tmpl)
}

func (s *ServiceImpl) AddElement(ctx context.Context, id string, element render.Element) (*domain.Response, error) {
	return s.mutateElements(ctx, id, func(elements []render.Element) ([]render.Element, error) {
		if err := element.Validate(); err != nil {
			return nil, domain.ErrInvalidElement
		}
		for _, existing := range elements {
			if existing.ID == element.ID {
				return nil, domain.ErrDuplicateElement
			}
		}
		return append(elements, element), nil
	})
}

func (s *ServiceImpl) UpdateElement(ctx context.Context, id, elementID string, patch domain.ElementPatch) (*domain.Response, error) {
	return s.mutateElements(ctx, id, func(elements []render.Element) ([]render.Element, error) {
		for i := range elements {
			if elements[i].ID != elementID {
				continue
			}
			applyPatch(&elements[i], patch)
			if err := elements[i].Validate(); err != nil {
				return nil, domain.ErrInvalidElement
			}
			return elements, nil
		}
		return nil, domain.ErrElementNotFound
	})
}

func (s *ServiceImpl) RemoveElement(ctx context.Context, id, elementID string) (*domain.Response, error) {
	return s.mutateElements(ctx, id, func(elements []render.Element) ([]render.Element, error) {
		for i := range elements {
			if elements[i].ID == elementID {
				return append(elements[:i], elements[i+1:]...), nil
			}
		}
		return nil, domain.ErrElementNotFound
	})
}

func (s *ServiceImpl) FindDefault(ctx context.Context, kind domain.Kind) (*domain.Template, error) {
	return s.repo.FindDefault(ctx, s.db, s.orgID(ctx), kind)
}

func (s *ServiceImpl) mutateElements(ctx context.Context, id string, mutate func([]render.Element) ([]render.Element, error)) (*domain.Response, error) {
	tmpl, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	elements, err := tmpl.ElementList()
	if err != nil {
		return nil, err
	}
	mutated, err := mutate(elements)
	if err != nil {
		return nil, err
	}
	if err := tmpl.SetElements(mutated); err != nil {
		return nil, err
	}
	tmpl.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, tmpl); err != nil {
		return nil, err
	}
	s.publish(ctx, tmpl, events.EventTemplateUpdated)
	return toResponse(tmpl)
}

func (s *ServiceImpl) find(ctx context.Context, id string) (*domain.Template, error) {
	parsed, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, s.db, s.orgID(ctx), parsed)
}

func (s *ServiceImpl) publish(ctx context.Context, tmpl *domain.Template, eventType string) {
	if s.outbox == nil {
		return
	}
	payload := events.TemplatePayload{
		TemplateID: tmpl.ID.String(),
		Kind:       string(tmpl.Kind),
		Name:       tmpl.Name,
	}
	if err := s.outbox.Publish(ctx, events.Event{
		OrgID:   tmpl.OrgID,
		Type:    eventType,
		Payload: payload.ToMap(),
	}); err != nil {
		s.log.Warn("publish template event failed",
			zap.String("template_id", tmpl.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func applyPatch(element *render.Element, patch domain.ElementPatch) {
	if patch.Content != nil {
		element.Content = *patch.Content
	}
	if patch.X != nil {
		element.X = *patch.X
	}
	if patch.Y != nil {
		element.Y = *patch.Y
	}
	if patch.Width != nil {
		element.Width = *patch.Width
	}
	if patch.Height != nil {
		element.Height = *patch.Height
	}
	if patch.FontSize != nil {
		element.FontSize = *patch.FontSize
	}
	if patch.FontWeight != nil {
		element.FontWeight = *patch.FontWeight
	}
	if patch.Color != nil {
		element.Color = *patch.Color
	}
}

func validateElements(elements []render.Element) error {
	seen := make(map[string]struct{}, len(elements))
	for _, element := range elements {
		if err := element.Validate(); err != nil {
			return domain.ErrInvalidElement
		}
		if _, ok := seen[element.ID]; ok {
			return domain.ErrDuplicateElement
		}
		seen[element.ID] = struct{}{}
	}
	return nil
}

func toResponse(tmpl *domain.Template) (*domain.Response, error) {
	elements, err := tmpl.ElementList()
	if err != nil {
		return nil, err
	}
	return &domain.Response{
		ID:        tmpl.ID.String(),
		OrgID:     tmpl.OrgID,
		Kind:      tmpl.Kind,
		Name:      tmpl.Name,
		IsDefault: tmpl.IsDefault,
		Elements:  elements,
		CreatedAt: tmpl.CreatedAt,
		UpdatedAt: tmpl.UpdatedAt,
	}, nil
}
