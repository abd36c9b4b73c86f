package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"litmus/internal/config"
	"litmus/internal/model"
	"litmus/internal/repository"
)

type ContentStore interface {
	ReadBrief(region, briefType string) ([]byte, error)
	ReadMagazine() ([]byte, error)
	ReadMoodHistory() ([]byte, error)
}

// ContentHandler serves the generated JSON documents exactly as the jobs wrote them.
type ContentHandler struct {
	store ContentStore
}

func NewContentHandler(store ContentStore) *ContentHandler {
	return &ContentHandler{store: store}
}

func (h *ContentHandler) GetBrief(c *gin.Context) {
	region := c.Param("region")
	briefType := c.Param("type")

	if err := config.ValidateBriefTarget(region, briefType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.store.ReadBrief(region, briefType)
	h.writeDocument(c, data, err, "brief")
}

// GetRegionBriefs returns both cadences for a region. A cadence not generated yet is null.
func (h *ContentHandler) GetRegionBriefs(c *gin.Context) {
	region := c.Param("region")

	if err := config.ValidateBriefTarget(region, model.BriefMorning); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := RegionBriefsResponse{Region: region}
	for _, briefType := range model.BriefTypes {
		data, err := h.store.ReadBrief(region, briefType)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			slog.Error("error reading brief", "region", region, "type", briefType, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error"})
			return
		}

		switch briefType {
		case model.BriefMorning:
			res.Morning = json.RawMessage(data)
		case model.BriefEvening:
			res.Evening = json.RawMessage(data)
		}
	}

	c.JSON(http.StatusOK, res)
}

func (h *ContentHandler) GetMagazine(c *gin.Context) {
	data, err := h.store.ReadMagazine()
	h.writeDocument(c, data, err, "magazine")
}

func (h *ContentHandler) GetMoodHistory(c *gin.Context) {
	data, err := h.store.ReadMoodHistory()
	h.writeDocument(c, data, err, "mood history")
}

func (h *ContentHandler) writeDocument(c *gin.Context, data []byte, err error, name string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No " + name + " available"})
		return
	}
	if err != nil {
		slog.Error("error reading document", "document", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error"})
		return
	}
	if !json.Valid(data) {
		slog.Error("stored document is not valid JSON", "document", name)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error"})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
