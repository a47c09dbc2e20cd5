package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"budgetbook/internal/domain"  // Importing domain models
	"budgetbook/internal/service" // Payment service
	"budgetbook/internal/utils"   // Cache utilities

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// PaymentRequest is the payload for creating or renaming a payment method
type PaymentRequest struct {
	Name string `json:"name" binding:"required,min=3,max=64"` // Payment method name
}

// ListPaymentsHandler returns one page of payment methods, cached per page
func ListPaymentsHandler(svc *service.PaymentService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := pageParam(c)
		ctx := context.Background() // Context for Redis operations
		cacheKey := "payments:page:" + strconv.Itoa(page)
		var cached service.Page[domain.Payment]
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"payments": cached, "cached": true})
			return
		}
		result, err := svc.List(page)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, result, ttl) // Cache the page
		c.JSON(http.StatusOK, gin.H{"payments": result, "cached": false})
	}
}

// CreatePaymentHandler creates a new payment method
func CreatePaymentHandler(svc *service.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be 3-64 characters"})
			return
		}
		payment := domain.Payment{Name: req.Name}
		if err := svc.Save(&payment); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, "payments:")
		c.JSON(http.StatusCreated, gin.H{"payment": payment})
	}
}

// GetPaymentHandler returns a single payment method
func GetPaymentHandler(svc *service.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		payment, err := svc.Get(id)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"payment": payment})
	}
}

// UpdatePaymentHandler renames a payment method
func UpdatePaymentHandler(svc *service.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req PaymentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be 3-64 characters"})
			return
		}
		payment, err := svc.Get(id)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		payment.Name = req.Name
		if err := svc.Save(payment); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, "payments:")
		c.JSON(http.StatusOK, gin.H{"payment": payment})
	}
}

// DeletePaymentHandler deletes a payment method unless transactions still use it
func DeletePaymentHandler(svc *service.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		payment, err := svc.Get(id)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		if err := svc.Delete(payment); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, "payments:")
		c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted"})
	}
}
