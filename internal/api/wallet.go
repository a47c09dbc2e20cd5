package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"budgetbook/internal/domain"  // Importing domain models
	"budgetbook/internal/service" // Wallet service
	"budgetbook/internal/utils"   // Cache utilities

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// WalletRequest is the payload for creating or editing a wallet
type WalletRequest struct {
	Name    string `json:"name" binding:"required,min=3,max=64"` // Wallet name
	Balance int64  `json:"balance"`                              // Balance in minor currency units
}

// walletCacheRoot covers every user's cached wallet pages. Admin pages
// list all users' wallets, so mutations clear the whole family.
const walletCacheRoot = "wallets:user:"

// walletCachePrefix scopes cached wallet pages to one user
func walletCachePrefix(userID uint) string {
	return walletCacheRoot + strconv.Itoa(int(userID)) + ":"
}

// ListWalletsHandler returns one page of wallets; admins see every
// wallet, other users only their own. Pages are cached per user.
func ListWalletsHandler(db *gorm.DB, svc *service.WalletService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		page := pageParam(c)
		ctx := context.Background() // Context for Redis operations
		cacheKey := walletCachePrefix(user.ID) + "page:" + strconv.Itoa(page)
		var cached service.Page[domain.Wallet]
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"wallets": cached, "cached": true})
			return
		}
		result, err := svc.List(page, user)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, result, ttl) // Cache the page
		c.JSON(http.StatusOK, gin.H{"wallets": result, "cached": false})
	}
}

// CreateWalletHandler creates a wallet owned by the acting user
func CreateWalletHandler(db *gorm.DB, svc *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		var req WalletRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		wallet := domain.Wallet{Name: req.Name, Balance: req.Balance}
		if err := svc.Create(&wallet, user); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, walletCacheRoot)
		c.JSON(http.StatusCreated, gin.H{"wallet": wallet})
	}
}

// GetWalletHandler returns a single wallet if the user may view it
func GetWalletHandler(db *gorm.DB, svc *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		wallet, err := svc.Get(id, user)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"wallet": wallet})
	}
}

// UpdateWalletHandler edits a wallet if the user may edit it
func UpdateWalletHandler(db *gorm.DB, svc *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req WalletRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		wallet, err := svc.Get(id, user)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		wallet.Name = req.Name
		wallet.Balance = req.Balance
		if err := svc.Update(wallet, user); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, walletCacheRoot)
		c.JSON(http.StatusOK, gin.H{"wallet": wallet})
	}
}

// DeleteWalletHandler deletes a wallet if the user may delete it and no
// transaction still references it
func DeleteWalletHandler(db *gorm.DB, svc *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		wallet, err := svc.Get(id, user)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		if err := svc.Delete(wallet, user); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, walletCacheRoot)
		c.JSON(http.StatusOK, gin.H{"message": "Wallet deleted"})
	}
}
