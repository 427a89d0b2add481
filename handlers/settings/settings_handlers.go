package settings

import (
	"errors"
	"log"
	"net/http"

	"api/models"
	"api/storage"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// Error message constants
const (
	ErrSiteTextNotFound     = "Site text not found"
	ErrInvalidRequest       = "Invalid request data"
	ErrFailedFetchSiteTexts = "Failed to fetch site texts"
	ErrFailedSaveSiteTexts  = "Failed to save site texts"
)

var store storage.SiteTextStore

// GetAllSiteTexts Get all site texts
// @Summary Get all site texts
// @Description Get every editable site text record (payment instructions, footer, about)
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {array} models.SiteText
// @Failure 500 {object} map[string]string
// @Router /settings [get]
func GetAllSiteTexts(c *gin.Context) {
	texts, err := store.ListSiteTexts()
	if err != nil {
		log.Printf("Error fetching site texts: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchSiteTexts)
		return
	}
	c.JSON(http.StatusOK, texts)
}

// GetSiteText Get one site text
// @Summary Get a site text by key
// @Description Get one editable site text record
// @Tags Settings
// @Accept json
// @Produce json
// @Param key path string true "Site text key"
// @Success 200 {object} models.SiteText
// @Failure 404 {object} map[string]string
// @Router /settings/{key} [get]
func GetSiteText(c *gin.Context) {
	text, err := store.GetSiteText(c.Param("key"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(c, http.StatusNotFound, ErrSiteTextNotFound)
			return
		}
		log.Printf("Error fetching site text: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchSiteTexts)
		return
	}
	c.JSON(http.StatusOK, text)
}

// UpdateSiteTexts Update site texts
// @Summary Update site texts
// @Description Insert or replace site text records from a key -> value mapping. Admin surface, unauthenticated (documented limitation).
// @Tags Settings
// @Accept json
// @Produce json
// @Param texts body map[string]string true "Key to value mapping"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /settings [post]
func UpdateSiteTexts(c *gin.Context) {
	var texts map[string]string
	if err := c.ShouldBindJSON(&texts); err != nil || len(texts) == 0 {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	for key, value := range texts {
		if err := store.PutSiteText(&models.SiteText{Key: key, Value: value}); err != nil {
			log.Printf("Error saving site text %s: %v", key, err)
			response.Error(c, http.StatusInternalServerError, ErrFailedSaveSiteTexts)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Site texts updated"})
}

// RegisterRoutes registers all routes related to site texts
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, siteTexts storage.SiteTextStore) {
	store = siteTexts

	r.GET("/settings", GetAllSiteTexts)
	r.GET("/settings/:key", GetSiteText)

	// Admin surface; unauthenticated by design, documented limitation
	r.POST("/settings", UpdateSiteTexts)
}
