package api

import (
	"context"  // Context for Redis operations
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"budgetbook/internal/domain"  // Importing domain models
	"budgetbook/internal/service" // Service errors
	"budgetbook/internal/utils"   // Cache utilities

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// currentUser loads the authenticated user for this request. On failure
// it writes the error response itself and returns false.
func currentUser(c *gin.Context, db *gorm.DB) (*domain.User, bool) {
	userID, exists := c.Get("userID") // Set by the JWT middleware
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	var user domain.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return &user, true
}

// pageParam reads the 1-based page query parameter, defaulting to 1
func pageParam(c *gin.Context) int {
	page := 1
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	return page
}

// idParam reads the numeric id path parameter
func idParam(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(v), true
}

// writeServiceError maps a service error onto an HTTP response; denial
// and not-found stay distinguishable for the caller
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, service.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, service.ErrDeletionBlocked):
		c.JSON(http.StatusConflict, gin.H{"error": "Record is still used by transactions"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// invalidateListCache drops every cached page under the given prefix
// after a mutation
func invalidateListCache(c *gin.Context, prefix string) {
	if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
		_ = utils.DeleteCachePrefix(context.Background(), rdb, prefix)
	}
}
