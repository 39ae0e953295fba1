package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smallbiznis/docpress/internal/render"
	templatedomain "github.com/smallbiznis/docpress/internal/template/domain"
)

type createTemplateRequest struct {
	Kind      string           `json:"kind"`
	Name      string           `json:"name"`
	IsDefault bool             `json:"is_default"`
	Elements  []render.Element `json:"elements"`
}

type updateTemplateRequest struct {
	Name     *string           `json:"name,omitempty"`
	Elements *[]render.Element `json:"elements,omitempty"`
}

// @Summary      Create Template
// @Description  Create a document template; empty elements get the standard layout
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        request body createTemplateRequest true "Create Template Request"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates [post]
func (s *Server) CreateTemplate(c *gin.Context) {
	var req createTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.templateSvc.Create(c.Request.Context(), templatedomain.CreateRequest{
		Kind:      strings.TrimSpace(req.Kind),
		Name:      strings.TrimSpace(req.Name),
		IsDefault: req.IsDefault,
		Elements:  req.Elements,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      List Templates
// @Description  List templates for the organization
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        kind        query  string  false  "Document Kind"
// @Param        is_default  query  bool    false  "Default Only"
// @Success      200  {object}  []templatedomain.Response
// @Router       /templates [get]
func (s *Server) ListTemplates(c *gin.Context) {
	var query templatedomain.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	query.Kind = strings.TrimSpace(query.Kind)

	resp, err := s.templateSvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Get Template
// @Description  Get template by ID
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/{id} [get]
func (s *Server) GetTemplateByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.templateSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Update Template
// @Description  Rename a template or replace its element list
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id       path  string                 true  "Template ID"
// @Param        request  body  updateTemplateRequest  true  "Update Template Request"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/{id} [patch]
func (s *Server) UpdateTemplate(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req updateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.templateSvc.Update(c.Request.Context(), templatedomain.UpdateRequest{
		ID:       id,
		Name:     trimOptionalString(req.Name),
		Elements: req.Elements,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Delete Template
// @Description  Delete a template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  map[string]string
// @Router       /templates/{id} [delete]
func (s *Server) DeleteTemplate(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.templateSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id, "deleted": true}})
}

// @Summary      Set Default Template
// @Description  Mark a template as the default for its document kind
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/{id}/default [post]
func (s *Server) SetDefaultTemplate(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.templateSvc.SetDefault(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Add Template Element
// @Description  Append an element to a template layout
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id       path  string          true  "Template ID"
// @Param        request  body  render.Element  true  "Element"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/{id}/elements [post]
func (s *Server) AddTemplateElement(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var element render.Element
	if err := c.ShouldBindJSON(&element); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.templateSvc.AddElement(c.Request.Context(), id, element)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Update Template Element
// @Description  Patch one element of a template layout
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id         path  string                      true  "Template ID"
// @Param        elementId  path  string                      true  "Element ID"
// @Param        request    body  templatedomain.ElementPatch true  "Element Patch"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/{id}/elements/{elementId} [patch]
func (s *Server) UpdateTemplateElement(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	elementID := strings.TrimSpace(c.Param("elementId"))

	var patch templatedomain.ElementPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.templateSvc.UpdateElement(c.Request.Context(), id, elementID, patch)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Remove Template Element
// @Description  Remove one element from a template layout
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id         path  string  true  "Template ID"
// @Param        elementId  path  string  true  "Element ID"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/{id}/elements/{elementId} [delete]
func (s *Server) RemoveTemplateElement(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	elementID := strings.TrimSpace(c.Param("elementId"))

	resp, err := s.templateSvc.RemoveElement(c.Request.Context(), id, elementID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func trimOptionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}
