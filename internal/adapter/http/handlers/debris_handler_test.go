package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestDebrisHandler_Calculate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.POST("/v1/debris/calculations", NewDebrisHandler().Calculate)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		r := newRouter()

		req := httptest.NewRequest(http.MethodPost, "/v1/debris/calculations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown moisture", func(t *testing.T) {
		r := newRouter()

		body := `{"entries":[{"category":"Drywall","weight_lb":100,"moisture":"soggy"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/debris/calculations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "INVALID_DEBRIS_CONTENT" {
			t.Fatalf("unexpected error code: %+v", resp)
		}
	})

	t.Run("success", func(t *testing.T) {
		r := newRouter()

		body := `{"entries":[
			{"category":"Drywall","weight_lb":1000,"moisture":"wet"},
			{"category":"Drywall","weight_lb":500,"moisture":"dry"},
			{"category":"Carpet","weight_lb":200,"moisture":"saturated"}
		]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/debris/calculations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Categories []struct {
				Category string  `json:"category"`
				WeightLb float64 `json:"weight_lb"`
			} `json:"categories"`
			TotalWeightLb float64 `json:"total_weight_lb"`
			TotalTons     float64 `json:"total_tons"`
			DumpsterSize  string  `json:"dumpster_size"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.TotalWeightLb != 2100 {
			t.Fatalf("expected total weight 2100, got %v", resp.TotalWeightLb)
		}
		if resp.TotalTons != 1.05 {
			t.Fatalf("expected 1.05 tons, got %v", resp.TotalTons)
		}
		if resp.DumpsterSize != "10 yard" {
			t.Fatalf("expected 10 yard dumpster, got %q", resp.DumpsterSize)
		}
		if len(resp.Categories) != 2 || resp.Categories[0].Category != "Drywall" || resp.Categories[0].WeightLb != 1800 {
			t.Fatalf("unexpected categories: %+v", resp.Categories)
		}
	})
}
