package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"budgetbook/internal/domain"  // Importing domain models
	"budgetbook/internal/service" // Transaction and tag services
	"budgetbook/internal/utils"   // Cache utilities

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// TransactionRequest is the payload for creating or editing a transaction
type TransactionRequest struct {
	Name        string    `json:"name" binding:"required,min=3,max=64"` // Short description
	Date        time.Time `json:"date" binding:"required"`              // Date of the movement, RFC 3339
	Amount      int64     `json:"amount" binding:"required"`            // Amount in minor currency units, signed
	Comment     string    `json:"comment" binding:"max=255"`            // Optional comment
	CategoryID  uint      `json:"category_id" binding:"required"`       // Category reference
	WalletID    uint      `json:"wallet_id" binding:"required"`         // Wallet reference
	PaymentID   uint      `json:"payment_id" binding:"required"`        // Payment method reference
	OperationID uint      `json:"operation_id" binding:"required"`      // Operation reference
	Tags        string    `json:"tags"`                                 // Comma-separated tag names
}

// TransactionResponse decorates a transaction with its serialized tag list
type TransactionResponse struct {
	domain.Transaction
	TagList string `json:"tag_list"` // Tag names joined with ", "
}

// transactionCacheRoot covers every user's cached transaction pages.
// Admin pages list all users' transactions, so mutations clear the
// whole family.
const transactionCacheRoot = "transactions:user:"

// transactionCachePrefix scopes cached transaction pages to one user
func transactionCachePrefix(userID uint) string {
	return transactionCacheRoot + strconv.Itoa(int(userID)) + ":"
}

// ListTransactionsHandler returns one page of transactions; admins see
// every transaction, other users only their own. Pages are cached per user.
func ListTransactionsHandler(db *gorm.DB, svc *service.TransactionService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		page := pageParam(c)
		ctx := context.Background() // Context for Redis operations
		cacheKey := transactionCachePrefix(user.ID) + "page:" + strconv.Itoa(page)
		var cached service.Page[domain.Transaction]
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"transactions": cached, "cached": true})
			return
		}
		result, err := svc.List(page, user)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, result, ttl) // Cache the page
		c.JSON(http.StatusOK, gin.H{"transactions": result, "cached": false})
	}
}

// CreateTransactionHandler records a new transaction and applies its
// amount to the wallet balance
func CreateTransactionHandler(db *gorm.DB, svc *service.TransactionService, tags *service.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		var req TransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		resolved, err := tags.ResolveList(req.Tags) // Resolve or create tags
		if err != nil {
			writeServiceError(c, err)
			return
		}
		transaction := domain.Transaction{
			Name:        req.Name,
			Date:        req.Date,
			Amount:      req.Amount,
			Comment:     req.Comment,
			CategoryID:  req.CategoryID,
			WalletID:    req.WalletID,
			PaymentID:   req.PaymentID,
			OperationID: req.OperationID,
			Tags:        resolved,
		}
		if err := svc.Create(&transaction, user); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, transactionCacheRoot)
		invalidateListCache(c, walletCacheRoot)
		c.JSON(http.StatusCreated, gin.H{"transaction": TransactionResponse{
			Transaction: transaction,
			TagList:     service.SerializeList(transaction.Tags),
		}})
	}
}

// GetTransactionHandler returns a single transaction if the user may view it
func GetTransactionHandler(db *gorm.DB, svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		transaction, err := svc.Get(id, user)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"transaction": TransactionResponse{
			Transaction: *transaction,
			TagList:     service.SerializeList(transaction.Tags),
		}})
	}
}

// UpdateTransactionHandler edits a transaction and re-balances the
// affected wallets by the amount delta
func UpdateTransactionHandler(db *gorm.DB, svc *service.TransactionService, tags *service.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req TransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		transaction, err := svc.Get(id, user)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		// Remember the amount and wallet before applying the edit
		prevAmount := transaction.Amount
		prevWalletID := transaction.WalletID
		resolved, err := tags.ResolveList(req.Tags) // Resolve or create tags
		if err != nil {
			writeServiceError(c, err)
			return
		}
		transaction.Name = req.Name
		transaction.Date = req.Date
		transaction.Amount = req.Amount
		transaction.Comment = req.Comment
		transaction.CategoryID = req.CategoryID
		transaction.WalletID = req.WalletID
		transaction.PaymentID = req.PaymentID
		transaction.OperationID = req.OperationID
		transaction.Tags = resolved
		if err := svc.Update(transaction, prevAmount, prevWalletID, user); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, transactionCacheRoot)
		invalidateListCache(c, walletCacheRoot)
		c.JSON(http.StatusOK, gin.H{"transaction": TransactionResponse{
			Transaction: *transaction,
			TagList:     service.SerializeList(transaction.Tags),
		}})
	}
}

// DeleteTransactionHandler deletes a transaction if the user may delete it
func DeleteTransactionHandler(db *gorm.DB, svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		transaction, err := svc.Get(id, user)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		if err := svc.Delete(transaction, user); err != nil {
			writeServiceError(c, err)
			return
		}
		invalidateListCache(c, transactionCacheRoot)
		c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
	}
}
