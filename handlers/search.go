package handlers

import (
	"net/http"

	"tutormatch/middleware"
	"tutormatch/services/search"
	"tutormatch/utils"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	SearchService search.SearchService
}

// SearchByCourseHandler handles GET /search?courses=<name> (exact match).
func (h *SearchHandler) SearchByCourseHandler(c *gin.Context) {
	users, err := h.SearchService.FindByCourse(c.Request.Context(), c.Query("courses"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// SearchByCoursePrefixHandler handles GET /search/:courses (case-insensitive prefix).
func (h *SearchHandler) SearchByCoursePrefixHandler(c *gin.Context) {
	users, err := h.SearchService.FindByCoursePrefix(c.Request.Context(), c.Param("courses"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// SearchPageHandler handles GET /app/search.
func (h *SearchHandler) SearchPageHandler(c *gin.Context) {
	data := gin.H{"SignedIn": false}
	if p := middleware.PrincipalFrom(c); p != nil {
		data = gin.H{"SignedIn": true, "Email": p.Email}
	}
	c.HTML(http.StatusOK, SearchPageTemplate, data)
}
