package analyses

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"talentmatch-backend/internal/comms"
	"talentmatch-backend/internal/extract"
	"talentmatch-backend/internal/match"
	"talentmatch-backend/internal/profile"
	"talentmatch-backend/internal/shared/server/respond"
	"talentmatch-backend/internal/shared/util"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis and match routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/candidates/analyze", h.analyzeText)
	rg.POST("/candidates/analyze-file", h.analyzeFile)
	rg.POST("/candidates/analyze-voice", h.analyzeVoice)
	rg.POST("/match", h.match)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.GET("/matches/:id", h.getMatch)
}

type analyzeTextRequest struct {
	Text           string `json:"text"`
	TargetIndustry string `json:"targetIndustry"`
}

func (h *Handler) analyzeText(c *gin.Context) {
	var req analyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	analysis, err := h.Svc.AnalyzeText(c.Request.Context(), req.Text, req.TargetIndustry)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze text", nil)
		}
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.JSON(c, http.StatusOK, analysis)
}

func (h *Handler) analyzeFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the 10MB limit", nil)
		return
	}
	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}

	analysis, err := h.Svc.AnalyzeFile(
		c.Request.Context(),
		data,
		fileHeader.Header.Get("Content-Type"),
		fileName,
		c.PostForm("targetIndustry"),
	)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupported):
			respond.Error(c, http.StatusBadRequest, "unsupported_media", "only pdf, docx and txt files are supported", nil)
		case errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "document contains no extractable text", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze file", nil)
		}
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.JSON(c, http.StatusOK, analysis)
}

type analyzeVoiceRequest struct {
	Transcript     string                `json:"transcript"`
	SpeechFeatures *comms.SpeechFeatures `json:"speechFeatures"`
	TargetIndustry string                `json:"targetIndustry"`
}

func (h *Handler) analyzeVoice(c *gin.Context) {
	var req analyzeVoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	analysis, err := h.Svc.AnalyzeVoice(c.Request.Context(), req.Transcript, req.SpeechFeatures, req.TargetIndustry)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "transcript is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze voice input", nil)
		}
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.JSON(c, http.StatusOK, analysis)
}

type matchRequest struct {
	AnalysisID string                    `json:"analysisId"`
	Profile    *profile.CandidateProfile `json:"profile"`
	Job        match.JobRequirement      `json:"jobRequirement"`
}

func (h *Handler) match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.AnalysisID == "" && req.Profile == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "profile or analysisId is required", nil)
		return
	}

	record, err := h.Svc.Match(c.Request.Context(), req.AnalysisID, req.Profile, req.Job)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		case errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "profile or analysisId is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to evaluate match", nil)
		}
		return
	}

	c.Set("matchId", record.ID)
	respond.JSON(c, http.StatusOK, record)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	analysisID := c.Param("id")
	if analysisID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "analysis id is required", nil)
		return
	}

	analysis, err := h.Svc.Get(c.Request.Context(), analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, analysis)
}

func (h *Handler) getMatch(c *gin.Context) {
	matchID := c.Param("id")
	if matchID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "match id is required", nil)
		return
	}

	record, err := h.Svc.GetMatch(c.Request.Context(), matchID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "match not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch match", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, record)
}
