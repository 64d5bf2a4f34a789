package lexicon

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"talentmatch-backend/internal/shared/server/respond"
)

// Handler exposes the lexicon admin surface. Mutations invalidate the
// classifier cache so new entries take effect immediately.
type Handler struct {
	Store      *Store
	Classifier *Classifier
}

// NewHandler constructs a Handler.
func NewHandler(store *Store, classifier *Classifier) *Handler {
	return &Handler{Store: store, Classifier: classifier}
}

// RegisterRoutes attaches lexicon admin routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/lexicons/skills", h.addSkills)
	rg.POST("/lexicons/job-titles", h.addJobTitles)
	rg.POST("/lexicons/certifications", h.addCertifications)
	rg.GET("/lexicons/stats", h.stats)
	rg.POST("/lexicons/export", h.export)
	rg.POST("/lexicons/import", h.importDir)
}

type addSkillsRequest struct {
	Industry string   `json:"industry"`
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

func (h *Handler) addSkills(c *gin.Context) {
	var req addSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	err := h.Store.AddSkills(req.Industry, req.Category, req.Skills)
	h.finishMutation(c, err)
}

type addJobTitlesRequest struct {
	Industry string   `json:"industry"`
	Titles   []string `json:"titles"`
}

func (h *Handler) addJobTitles(c *gin.Context) {
	var req addJobTitlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	err := h.Store.AddJobTitles(req.Industry, req.Titles)
	h.finishMutation(c, err)
}

type addCertificationsRequest struct {
	Industry       string   `json:"industry"`
	Certifications []string `json:"certifications"`
}

func (h *Handler) addCertifications(c *gin.Context) {
	var req addCertificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	err := h.Store.AddCertifications(req.Industry, req.Certifications)
	h.finishMutation(c, err)
}

// finishMutation maps store errors to responses. A persist failure still
// counts as success because the in-memory lexicon is already updated.
func (h *Handler) finishMutation(c *gin.Context, err error) {
	switch {
	case err == nil:
		h.Classifier.InvalidateCache()
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	case errors.Is(err, ErrValidation):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrPersist):
		h.Classifier.InvalidateCache()
		respond.JSON(c, http.StatusOK, gin.H{
			"ok":      true,
			"warning": "lexicon updated in memory but could not be persisted",
		})
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update lexicon", nil)
	}
}

func (h *Handler) stats(c *gin.Context) {
	respond.JSON(c, http.StatusOK, h.Store.Stats())
}

type directoryRequest struct {
	Directory string `json:"directory"`
}

func (h *Handler) export(c *gin.Context) {
	var req directoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Directory == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "directory is required", nil)
		return
	}

	if err := h.Store.Export(req.Directory); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export lexicons", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) importDir(c *gin.Context) {
	var req directoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Directory == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "directory is required", nil)
		return
	}

	imported, err := h.Store.Import(req.Directory)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to import lexicons", gin.H{"error": err.Error()})
		return
	}
	h.Classifier.InvalidateCache()
	respond.JSON(c, http.StatusOK, gin.H{"ok": true, "importedDatasets": imported})
}
