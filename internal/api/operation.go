package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"budgetbook/internal/domain"  // Importing domain models
	"budgetbook/internal/service" // Operation service
	"budgetbook/internal/utils"   // Cache utilities

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// OperationRequest is the payload for creating or renaming an operation
type OperationRequest struct {
	Name string `json:"name" binding:"required,min=3,max=64"` // Operation name
}

// ListOperationsHandler returns one page of operations, cached per page
func ListOperationsHandler(svc *service.OperationService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := pageParam(c)
		ctx := context.Background() // Context for Redis operations
		cacheKey := "operations:page:" + strconv.Itoa(page)
		var cached service.Page[domain.Operation]
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"operations": cached, "cached": true})
			return
		}
		result, err := svc.List(page)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, result, ttl) // Cache the page
		c.JSON(http.StatusOK, gin.H{"operations": result, "cached": false})
	}
}

// CreateOperationHandler creates a new operation
func CreateOperationHandler(svc *service.OperationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OperationRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be 3-64 characters"})
			return
		}
		operation := domain.Operation{Name: req.Name}
		if err := svc.Save(&operation); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, "operations:")
		c.JSON(http.StatusCreated, gin.H{"operation": operation})
	}
}

// GetOperationHandler returns a single operation
func GetOperationHandler(svc *service.OperationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		operation, err := svc.Get(id)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"operation": operation})
	}
}

// UpdateOperationHandler renames an operation
func UpdateOperationHandler(svc *service.OperationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req OperationRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be 3-64 characters"})
			return
		}
		operation, err := svc.Get(id)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		operation.Name = req.Name
		if err := svc.Save(operation); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, "operations:")
		c.JSON(http.StatusOK, gin.H{"operation": operation})
	}
}

// DeleteOperationHandler deletes an operation unless transactions still use it
func DeleteOperationHandler(svc *service.OperationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		operation, err := svc.Get(id)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		if err := svc.Delete(operation); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, "operations:")
		c.JSON(http.StatusOK, gin.H{"message": "Operation deleted"})
	}
}
