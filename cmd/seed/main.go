package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"fintrack/internal/domain/category"
	"fintrack/internal/domain/transaction"
	"fintrack/internal/domain/user"
	"fintrack/internal/infrastructure/postgres"
	"fintrack/internal/shared/auth"
	"fintrack/internal/shared/config"
)

var incomeCategories = []string{
	"Salary", "Freelance", "Investment", "Business", "Gift", "Other Income",
}

var expenseCategories = []string{
	"Food & Drinks", "Transportation", "Shopping", "Entertainment",
	"Bills & Utilities", "Healthcare", "Education", "Housing",
	"Insurance", "Other Expense",
}

type demoUser struct {
	name     string
	email    string
	password string
}

var demoUsers = []demoUser{
	{name: "Demo User", email: "demo@fintrack.dev", password: "demo1234"},
	{name: "Test User", email: "test@fintrack.dev", password: "test1234"},
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("Seed error: %v", err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return err
	}
	defer db.Close()

	log.Println("Connected to database")

	ctx := context.Background()
	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)

	for _, du := range demoUsers {
		u, err := seedUser(ctx, userRepo, du)
		if err != nil {
			return err
		}
		log.Printf("Seeded user %s (id=%d)", u.Email, u.ID)

		categories, err := seedCategories(ctx, categoryRepo, u.ID)
		if err != nil {
			return err
		}
		log.Printf("Seeded %d categories for %s", len(categories), u.Email)

		created, err := seedTransactions(ctx, transactionRepo, u.ID, categories)
		if err != nil {
			return err
		}
		log.Printf("Seeded %d transactions for %s", created, u.Email)
	}

	log.Println("Seed complete")
	return nil
}

func seedUser(ctx context.Context, repo user.Repository, du demoUser) (*user.User, error) {
	hash, err := auth.HashPassword(du.password)
	if err != nil {
		return nil, err
	}
	name := du.name
	return repo.UpsertByEmail(ctx, user.CreateParams{
		Name:         &name,
		Email:        du.email,
		PasswordHash: hash,
	})
}

func seedCategories(ctx context.Context, repo category.Repository, userID int64) (map[string]*category.Category, error) {
	categories := make(map[string]*category.Category)

	for _, name := range incomeCategories {
		c, err := repo.UpsertByName(ctx, userID, category.CreateParams{Name: name, Type: category.TypeIncome})
		if err != nil {
			return nil, err
		}
		categories[name] = c
	}
	for _, name := range expenseCategories {
		c, err := repo.UpsertByName(ctx, userID, category.CreateParams{Name: name, Type: category.TypeExpense})
		if err != nil {
			return nil, err
		}
		categories[name] = c
	}

	return categories, nil
}

// seedTransactions writes a month of sample activity. Re-running the
// seeder appends another batch; it does not deduplicate transactions.
func seedTransactions(ctx context.Context, repo transaction.Repository, userID int64, categories map[string]*category.Category) (int, error) {
	now := time.Now()
	samples := []struct {
		categoryName string
		txType       string
		amount       float64
		description  string
		daysAgo      int
	}{
		{"Salary", transaction.TypeIncome, 5000.00, "Monthly salary", 28},
		{"Freelance", transaction.TypeIncome, 850.00, "Website project", 14},
		{"Investment", transaction.TypeIncome, 120.45, "Dividend payout", 7},
		{"Housing", transaction.TypeExpense, 1500.00, "Rent", 27},
		{"Food & Drinks", transaction.TypeExpense, 86.30, "Groceries", 21},
		{"Food & Drinks", transaction.TypeExpense, 42.75, "Dinner out", 10},
		{"Transportation", transaction.TypeExpense, 60.00, "Metro pass", 25},
		{"Bills & Utilities", transaction.TypeExpense, 110.20, "Electricity", 20},
		{"Entertainment", transaction.TypeExpense, 15.99, "Streaming subscription", 18},
		{"Healthcare", transaction.TypeExpense, 35.00, "Pharmacy", 5},
		{"Shopping", transaction.TypeExpense, 129.90, "New shoes", 3},
	}

	created := 0
	for _, s := range samples {
		params := transaction.CreateParams{
			Type:   s.txType,
			Amount: s.amount,
			Date:   now.AddDate(0, 0, -s.daysAgo),
		}
		desc := s.description
		params.Description = &desc
		if c, ok := categories[s.categoryName]; ok {
			id := c.ID
			params.CategoryID = &id
		}

		if _, err := repo.Create(ctx, userID, params); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}
