package main

import (
	"errors"
	"time"

	"budgetbook/internal/config"  // Custom import path (Config)
	"budgetbook/internal/domain"  // Importing domain models
	"budgetbook/internal/service" // Business services

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Seeds the database with demo users, reference data, wallets and
// transactions for local development. Safe to run repeatedly: existing
// records are reused by name or email.
func main() {
	cfg := config.LoadConfig() // Load configuration
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	admin := seedUser(db, "admin@example.com", "admin1234", domain.RoleAdmin)
	user := seedUser(db, "user@example.com", "user1234", domain.RoleUser)

	categories := service.NewCategoryService(db)
	for _, name := range []string{"Groceries", "Rent", "Leisure", "Salary"} {
		if _, err := categories.GetByName(name); errors.Is(err, service.ErrNotFound) {
			if err := categories.Save(&domain.Category{Name: name}); err != nil {
				logrus.Fatalf("failed to seed category %q: %v", name, err)
			}
		}
	}

	operations := service.NewOperationService(db)
	for _, name := range []string{"Income", "Expense"} {
		if _, err := operations.GetByName(name); errors.Is(err, service.ErrNotFound) {
			if err := operations.Save(&domain.Operation{Name: name}); err != nil {
				logrus.Fatalf("failed to seed operation %q: %v", name, err)
			}
		}
	}

	payments := service.NewPaymentService(db)
	for _, name := range []string{"Cash", "Card", "Transfer"} {
		if _, err := payments.GetByName(name); errors.Is(err, service.ErrNotFound) {
			if err := payments.Save(&domain.Payment{Name: name}); err != nil {
				logrus.Fatalf("failed to seed payment %q: %v", name, err)
			}
		}
	}

	tags := service.NewTagService(db)
	resolved, err := tags.ResolveList("monthly, shared, urgent")
	if err != nil {
		logrus.Fatalf("failed to seed tags: %v", err)
	}

	wallets := service.NewWalletService(db)
	wallet := &domain.Wallet{Name: "Main wallet", Balance: 100000}
	if err := db.Where("name = ? AND user_id = ?", wallet.Name, user.ID).First(wallet).Error; err != nil {
		if err := wallets.Create(wallet, user); err != nil {
			logrus.Fatalf("failed to seed wallet: %v", err)
		}
	}

	category, _ := categories.GetByName("Groceries")
	operation, _ := operations.GetByName("Expense")
	payment, _ := payments.GetByName("Card")
	if category == nil || operation == nil || payment == nil {
		logrus.Fatal("reference data missing after seeding")
	}

	transactions := service.NewTransactionService(db)
	var existing domain.Transaction
	// Re-creating the transaction would also re-apply its amount to the
	// wallet, so reruns must skip it entirely
	if err := db.Where("name = ? AND author_id = ?", "Weekly shopping", user.ID).First(&existing).Error; err != nil {
		transaction := &domain.Transaction{
			Name:        "Weekly shopping",
			Date:        time.Now(),
			Amount:      -4500,
			Comment:     "seeded",
			CategoryID:  category.ID,
			WalletID:    wallet.ID,
			PaymentID:   payment.ID,
			OperationID: operation.ID,
			Tags:        resolved,
		}
		if err := transactions.Create(transaction, user); err != nil {
			logrus.Fatalf("failed to seed transaction: %v", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"admin": admin.Email,
		"user":  user.Email,
	}).Info("Seeding completed.")
}

// seedUser creates the user unless the email is already registered
func seedUser(db *gorm.DB, email, password string, role domain.Role) *domain.User {
	var user domain.User
	if err := db.Where("email = ?", email).First(&user).Error; err == nil {
		return &user
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("failed to hash password: %v", err)
	}
	user = domain.User{Email: email, Password: string(hash), Role: role}
	if err := db.Create(&user).Error; err != nil {
		logrus.Fatalf("failed to seed user %q: %v", email, err)
	}
	return &user
}
