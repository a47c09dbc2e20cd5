package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"budgetbook/internal/domain"  // Importing domain models
	"budgetbook/internal/service" // Category service
	"budgetbook/internal/utils"   // Cache utilities

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// CategoryRequest is the payload for creating or renaming a category
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=3,max=64"` // Category name
}

// ListCategoriesHandler returns one page of categories, cached per page
func ListCategoriesHandler(svc *service.CategoryService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := pageParam(c)
		ctx := context.Background() // Context for Redis operations
		cacheKey := "categories:page:" + strconv.Itoa(page)
		var cached service.Page[domain.Category]
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"categories": cached, "cached": true})
			return
		}
		result, err := svc.List(page)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, result, ttl) // Cache the page
		c.JSON(http.StatusOK, gin.H{"categories": result, "cached": false})
	}
}

// CreateCategoryHandler creates a new category
func CreateCategoryHandler(svc *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be 3-64 characters"})
			return
		}
		category := domain.Category{Name: req.Name}
		if err := svc.Save(&category); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, "categories:")
		c.JSON(http.StatusCreated, gin.H{"category": category})
	}
}

// GetCategoryHandler returns a single category
func GetCategoryHandler(svc *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		category, err := svc.Get(id)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"category": category})
	}
}

// UpdateCategoryHandler renames a category
func UpdateCategoryHandler(svc *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req CategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be 3-64 characters"})
			return
		}
		category, err := svc.Get(id)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		category.Name = req.Name
		if err := svc.Save(category); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, "categories:")
		c.JSON(http.StatusOK, gin.H{"category": category})
	}
}

// DeleteCategoryHandler deletes a category unless transactions still use it
func DeleteCategoryHandler(svc *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		category, err := svc.Get(id)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		if err := svc.Delete(category); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, "categories:")
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
