package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"budgetbook/internal/domain"  // Importing domain models
	"budgetbook/internal/service" // Tag service
	"budgetbook/internal/utils"   // Cache utilities

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// TagRequest is the payload for creating or renaming a tag
type TagRequest struct {
	Name string `json:"name" binding:"required,min=3,max=64"` // Tag name
}

// ListTagsHandler returns one page of tags, cached per page
func ListTagsHandler(svc *service.TagService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := pageParam(c)
		ctx := context.Background() // Context for Redis operations
		cacheKey := "tags:page:" + strconv.Itoa(page)
		var cached service.Page[domain.Tag]
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"tags": cached, "cached": true})
			return
		}
		result, err := svc.List(page)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, result, ttl) // Cache the page
		c.JSON(http.StatusOK, gin.H{"tags": result, "cached": false})
	}
}

// CreateTagHandler creates a new tag
func CreateTagHandler(svc *service.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TagRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be 3-64 characters"})
			return
		}
		tag := domain.Tag{Name: req.Name}
		if err := svc.Save(&tag); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, "tags:")
		c.JSON(http.StatusCreated, gin.H{"tag": tag})
	}
}

// GetTagHandler returns a single tag
func GetTagHandler(svc *service.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		tag, err := svc.Get(id)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tag": tag})
	}
}

// UpdateTagHandler renames a tag
func UpdateTagHandler(svc *service.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req TagRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be 3-64 characters"})
			return
		}
		tag, err := svc.Get(id)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		tag.Name = req.Name
		if err := svc.Save(tag); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, "tags:")
		c.JSON(http.StatusOK, gin.H{"tag": tag})
	}
}

// DeleteTagHandler deletes a tag; tags have no referencing guard
func DeleteTagHandler(svc *service.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		tag, err := svc.Get(id)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		if err := svc.Delete(tag); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, "tags:")
		c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
	}
}
