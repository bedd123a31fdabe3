package api

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/lead-comb/app/feed"
	"github.com/lysyi3m/lead-comb/app/lead"
	"github.com/lysyi3m/lead-comb/app/registry"
	"github.com/lysyi3m/lead-comb/app/topic"
)

const maxBodySize = 10 << 20

func NewHandler(reg *registry.Registry, topics topic.Lookup, itemCap int, version string) *Handler {
	return &Handler{
		registry:   reg,
		normalizer: lead.NewNormalizer(),
		decoder:    feed.NewDecoder(),
		topics:     topics,
		itemCap:    itemCap,
		version:    version,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:          "ok",
		Version:         h.version,
		RegistryVersion: h.registry.Version(),
		Feeds:           h.registry.Len(),
		Timestamp:       time.Now().In(time.Local).Format(time.RFC3339),
	})
}

func (h *Handler) ListFeeds(c *gin.Context) {
	feeds := h.registry.ListFeeds()

	c.Header("X-Feed-Count", strconv.Itoa(len(feeds)))
	c.JSON(http.StatusOK, lead.Wrap(feeds))
}

func (h *Handler) ListGroups(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": h.registry.Version(),
		"groups":  h.registry.Groups(),
		"total":   h.registry.Len(),
	})
}

func (h *Handler) NormalizeRSS(c *gin.Context) {
	itemCap := h.itemCap
	if raw := c.Query("cap"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cap parameter"})
			return
		}
		itemCap = parsed
	}

	body, ok := readBody(c)
	if !ok {
		return
	}

	sourceURL := c.Query("source_url")
	records := h.normalizer.AdaptRSS(h.decoder.Items(body), sourceURL, itemCap)
	respondLeads(c, records)
}

func (h *Handler) NormalizeAI(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	hint := c.Query("topic")
	if hint == "" {
		hint = topic.Resolve(c.Request.Context(), h.topics)
	}

	records := h.normalizer.AdaptAICompletion(lead.DecodeCompletion(body), hint)
	respondLeads(c, records)
}

func readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize))
	if err != nil {
		slog.Error("Failed to read request body", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return nil, false
	}
	return body, true
}

func respondLeads(c *gin.Context, records []lead.Record) {
	c.Header("X-Lead-Count", strconv.Itoa(len(records)))
	c.JSON(http.StatusOK, lead.Wrap(records))
}
