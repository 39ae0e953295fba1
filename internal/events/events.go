// Package events records document lifecycle events through a transactional
// outbox so downstream consumers (mailers, audit trails) can follow renders
// and template edits.
package events

// Document event types.
const (
	EventTemplateCreated  = "template.created"
	EventTemplateUpdated  = "template.updated"
	EventTemplateDeleted  = "template.deleted"
	EventDocumentRendered = "document.rendered"
)

// RenderedPayload captures the minimal data describing one rendered document.
type RenderedPayload struct {
	Kind           string `json:"kind"`
	DocumentNumber string `json:"document_number"`
	Pages          int    `json:"pages"`
	TemplateID     string `json:"template_id,omitempty"`
}

// ToMap converts the payload into an outbox-friendly map.
func (p RenderedPayload) ToMap() map[string]any {
	payload := map[string]any{
		"kind":            p.Kind,
		"document_number": p.DocumentNumber,
		"pages":           p.Pages,
	}
	if p.TemplateID != "" {
		payload["template_id"] = p.TemplateID
	}
	return payload
}

// TemplatePayload captures the minimal data describing a template mutation.
type TemplatePayload struct {
	TemplateID string `json:"template_id"`
	Kind       string `json:"kind"`
	Name       string `json:"name"`
}

// ToMap converts the payload into an outbox-friendly map.
func (p TemplatePayload) ToMap() map[string]any {
	return map[string]any{
		"template_id": p.TemplateID,
		"kind":        p.Kind,
		"name":        p.Name,
	}
}
