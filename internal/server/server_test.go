package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/smallbiznis/docpress/internal/clock"
	"github.com/smallbiznis/docpress/internal/config"
	documentservice "github.com/smallbiznis/docpress/internal/document/service"
	"github.com/smallbiznis/docpress/internal/render/assets"
	"github.com/smallbiznis/docpress/internal/seed"
	templatedomain "github.com/smallbiznis/docpress/internal/template/domain"
	"github.com/smallbiznis/docpress/internal/template/repository"
	templateservice "github.com/smallbiznis/docpress/internal/template/service"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&templatedomain.Template{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := seed.EnsureDefaultTemplates(db, 1); err != nil {
		t.Fatalf("seed: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	cfg := config.Config{DefaultOrgID: 1, CurrencySymbol: "£"}

	templateSvc := templateservice.NewService(templateservice.Params{
		DB:    db,
		Repo:  repository.Provide(),
		GenID: node,
		Log:   zap.NewNop(),
		Cfg:   cfg,
	})
	documentSvc := documentservice.NewService(documentservice.Params{
		Templates: templateSvc,
		Resolver:  assets.NewResolver(nil),
		Clock:     clock.SystemClock{},
		Cfg:       cfg,
	})

	srv := &Server{
		cfg:         cfg,
		log:         zap.NewNop(),
		db:          db,
		templateSvc: templateSvc,
		documentSvc: documentSvc,
	}
	r := gin.New()
	srv.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return envelope.Data
}

func TestHealthz(t *testing.T) {
	r := setupTestServer(t)
	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
}

func TestTemplateCRUDOverHTTP(t *testing.T) {
	r := setupTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/templates", map[string]any{
		"kind": "invoice",
		"name": "Branded",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	created := decodeData(t, w)
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatalf("missing id in %v", created)
	}

	w = doJSON(t, r, http.MethodGet, "/api/templates?kind=invoice", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/templates/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPatch, "/api/templates/"+id, map[string]any{
		"name": "Branded v2",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("patch: %d %s", w.Code, w.Body.String())
	}
	if got := decodeData(t, w)["name"]; got != "Branded v2" {
		t.Fatalf("rename: %v", got)
	}

	w = doJSON(t, r, http.MethodPost, "/api/templates/"+id+"/default", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("set default: %d %s", w.Code, w.Body.String())
	}
	if got := decodeData(t, w)["is_default"]; got != true {
		t.Fatalf("default flag: %v", got)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/templates/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/templates/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestTemplateElementEndpoints(t *testing.T) {
	r := setupTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/templates", map[string]any{
		"kind": "quote",
		"name": "Layout",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	id := decodeData(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/templates/"+id+"/elements", map[string]any{
		"id":   "terms",
		"type": "text",
		"content": "Payment due within 30 days",
		"x":    40,
		"y":    700,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add element: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPatch, "/api/templates/"+id+"/elements/terms", map[string]any{
		"y": 710,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("patch element: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/templates/"+id+"/elements/terms", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove element: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/templates/"+id+"/elements/terms", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing element, got %d", w.Code)
	}
}

func TestCreateTemplateUnknownKind(t *testing.T) {
	r := setupTestServer(t)
	w := doJSON(t, r, http.MethodPost, "/api/templates", map[string]any{
		"kind": "receipt",
		"name": "Nope",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d %s", w.Code, w.Body.String())
	}
}

func TestGenerateInvoiceOverHTTP(t *testing.T) {
	r := setupTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/documents/invoice", map[string]any{
		"invoice": map[string]any{
			"number": "INV-0042",
			"client_name": "Acme Ltd",
			"amount": 1000,
			"vat":    20,
			"status": "Unpaid",
		},
		"company": map[string]any{"name": "Widgets Ltd"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("generate: %d %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type %q", ct)
	}
	if got := w.Header().Get("X-Document-Number"); got != "INV-0042" {
		t.Fatalf("document number header %q", got)
	}
	if got := w.Header().Get("X-Pages"); got != "1" {
		t.Fatalf("pages header %q", got)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "invoice-INV-0042.pdf") {
		t.Fatalf("content disposition %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("body is not a PDF")
	}
}

func TestRenderUnknownKindOverHTTP(t *testing.T) {
	r := setupTestServer(t)
	w := doJSON(t, r, http.MethodPost, "/api/documents/receipt/render", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d %s", w.Code, w.Body.String())
	}
}

func TestRenderMissingRecordOverHTTP(t *testing.T) {
	r := setupTestServer(t)
	w := doJSON(t, r, http.MethodPost, "/api/documents/invoice/render", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d %s", w.Code, w.Body.String())
	}
}
