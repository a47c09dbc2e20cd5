package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"budgetbook/internal/domain" // Importing domain models
	"budgetbook/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// Number of users per admin listing page
const adminUsersPageSize = 20

// UserAdminResponse represents the user data returned to admin
type UserAdminResponse struct {
	ID      uint            `json:"id"`      // User ID
	Email   string          `json:"email"`   // Login email
	Role    domain.Role     `json:"role"`    // User role
	Wallets []domain.Wallet `json:"wallets"` // Wallets owned by the user
}

// ListUsersHandler returns all users with their wallets, admin only
func ListUsersHandler(db *gorm.DB, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		page := pageParam(c)
		cacheKey := "admin:users:page:" + strconv.Itoa(page)
		var cached struct {
			Users      []UserAdminResponse `json:"users"`       // List of users
			Page       int                 `json:"page"`        // Current page
			PageSize   int                 `json:"page_size"`   // Page size
			Total      int64               `json:"total"`       // Total number of users
			TotalPages int                 `json:"total_pages"` // Total pages
		}
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"users":       cached.Users,
				"page":        cached.Page,
				"page_size":   cached.PageSize,
				"total":       cached.Total,
				"total_pages": cached.TotalPages,
				"cached":      true,
			})
			return
		}
		offset := (page - 1) * adminUsersPageSize // Calculate offset for pagination
		var total int64
		if err := db.Model(&domain.User{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
			return
		}
		var users []domain.User
		// Preload the wallets relation, apply offset and limit for pagination
		if err := db.Preload("Wallets").Offset(offset).Limit(adminUsersPageSize).Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		totalPages := (int(total) + adminUsersPageSize - 1) / adminUsersPageSize
		resp := make([]UserAdminResponse, len(users))
		for i, u := range users {
			resp[i] = UserAdminResponse{
				ID:      u.ID,
				Email:   u.Email,
				Role:    u.Role,
				Wallets: u.Wallets,
			}
		}
		respData := gin.H{
			"users":       resp,
			"page":        page,
			"page_size":   adminUsersPageSize,
			"total":       total,
			"total_pages": totalPages,
			"cached":      false,
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, respData, ttl) // Cache the response
		c.JSON(http.StatusOK, respData)
	}
}
