package analyses

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupAnalysisRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := newTestService(t)
	handler := NewHandler(svc)

	r := gin.New()
	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeTextEndpoint(t *testing.T) {
	router := setupAnalysisRouter(t)

	resp := postJSON(t, router, "/api/v1/candidates/analyze", map[string]string{
		"text": sampleResumeText,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var analysis Analysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if analysis.ID == "" {
		t.Fatalf("expected analysis id")
	}
	if analysis.Profile.DetectedIndustry != "technology" {
		t.Fatalf("expected technology, got %q", analysis.Profile.DetectedIndustry)
	}

	get := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+analysis.ID, nil)
	getResp := httptest.NewRecorder()
	router.ServeHTTP(getResp, get)
	if getResp.Code != http.StatusOK {
		t.Fatalf("expected 200 on fetch, got %d", getResp.Code)
	}
}

func TestAnalyzeTextEndpointRejectsEmpty(t *testing.T) {
	router := setupAnalysisRouter(t)

	resp := postJSON(t, router, "/api/v1/candidates/analyze", map[string]string{"text": ""})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %q", body.Error.Code)
	}
}

func TestGetAnalysisNotFound(t *testing.T) {
	router := setupAnalysisRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/missing", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestAnalyzeFileEndpoint(t *testing.T) {
	router := setupAnalysisRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "resume.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(sampleResumeText)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.WriteField("targetIndustry", "technology"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/candidates/analyze-file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var analysis Analysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if analysis.Kind != KindFile {
		t.Fatalf("expected kind file, got %q", analysis.Kind)
	}
}

func TestAnalyzeFileEndpointRequiresFile(t *testing.T) {
	router := setupAnalysisRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/candidates/analyze-file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestAnalyzeVoiceEndpoint(t *testing.T) {
	router := setupAnalysisRouter(t)

	resp := postJSON(t, router, "/api/v1/candidates/analyze-voice", map[string]any{
		"transcript": "I have led software engineering teams for ten years and delivered cloud platforms in Python.",
		"speechFeatures": map[string]float64{
			"energyMean": 0.05,
			"pitchMean":  150,
		},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var analysis Analysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if analysis.Kind != KindVoice {
		t.Fatalf("expected kind voice, got %q", analysis.Kind)
	}
	if analysis.Communication == nil || analysis.CommunicationInsights == nil {
		t.Fatalf("expected communication scores and insights")
	}
}

func TestMatchEndpoint(t *testing.T) {
	router := setupAnalysisRouter(t)

	analyzeResp := postJSON(t, router, "/api/v1/candidates/analyze", map[string]string{
		"text": sampleResumeText,
	})
	var analysis Analysis
	if err := json.NewDecoder(analyzeResp.Body).Decode(&analysis); err != nil {
		t.Fatalf("decode analysis: %v", err)
	}

	resp := postJSON(t, router, "/api/v1/match", map[string]any{
		"analysisId": analysis.ID,
		"jobRequirement": map[string]any{
			"industry":       "technology",
			"requiredSkills": []string{"python", "aws"},
		},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var record MatchRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		t.Fatalf("decode match: %v", err)
	}
	if record.Result.OverallScore < 0 || record.Result.OverallScore > 100 {
		t.Fatalf("overall score %d out of range", record.Result.OverallScore)
	}

	get := httptest.NewRequest(http.MethodGet, "/api/v1/matches/"+record.ID, nil)
	getResp := httptest.NewRecorder()
	router.ServeHTTP(getResp, get)
	if getResp.Code != http.StatusOK {
		t.Fatalf("expected 200 on fetch, got %d", getResp.Code)
	}
}

func TestMatchEndpointValidation(t *testing.T) {
	router := setupAnalysisRouter(t)

	resp := postJSON(t, router, "/api/v1/match", map[string]any{
		"jobRequirement": map[string]any{"requiredSkills": []string{"python"}},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without profile or analysisId, got %d", resp.Code)
	}

	resp = postJSON(t, router, "/api/v1/match", map[string]any{
		"analysisId":     "missing",
		"jobRequirement": map[string]any{"requiredSkills": []string{"python"}},
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown analysis, got %d", resp.Code)
	}
}
