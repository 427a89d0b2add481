package settings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"api/models"
	"api/storage"

	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T) (*gin.Engine, *storage.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	memory := storage.NewMemoryStore()
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), memory)
	return r, memory
}

func TestGetSiteText(t *testing.T) {
	r, memory := setupRouter(t)
	if err := memory.PutSiteText(&models.SiteText{Key: models.SiteTextFooterEmail, Value: "org@example.com"}); err != nil {
		t.Fatalf("PutSiteText: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings/"+models.SiteTextFooterEmail, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var text models.SiteText
	if err := json.Unmarshal(w.Body.Bytes(), &text); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if text.Value != "org@example.com" {
		t.Errorf("value = %q", text.Value)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/settings/missing", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing key status = %d, want 404", w.Code)
	}
}

func TestUpdateSiteTexts(t *testing.T) {
	r, memory := setupRouter(t)

	body := `{"payment_text": "Pay by invoice", "footer_text": "Spring 2026"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	text, err := memory.GetSiteText(models.SiteTextPaymentText)
	if err != nil || text.Value != "Pay by invoice" {
		t.Fatalf("stored text = %+v, err %v", text, err)
	}

	// Update replaces the previous value.
	body = `{"payment_text": "Pay at the venue"}`
	req = httptest.NewRequest(http.MethodPost, "/api/v1/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d", w.Code)
	}
	text, _ = memory.GetSiteText(models.SiteTextPaymentText)
	if text.Value != "Pay at the venue" {
		t.Errorf("value after update = %q", text.Value)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/settings", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty mapping status = %d, want 400", w.Code)
	}
}

func TestGetAllSiteTexts(t *testing.T) {
	r, memory := setupRouter(t)
	for _, key := range []string{models.SiteTextAboutText, models.SiteTextFooterText} {
		if err := memory.PutSiteText(&models.SiteText{Key: key, Value: "text"}); err != nil {
			t.Fatalf("PutSiteText: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var texts []models.SiteText
	if err := json.Unmarshal(w.Body.Bytes(), &texts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(texts) != 2 {
		t.Fatalf("got %d texts, want 2", len(texts))
	}
	if texts[0].Key > texts[1].Key {
		t.Error("texts must be ordered by key")
	}
}
