package repository

import (
	"sms-expense-backend/internal/models"

	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) DB() *gorm.DB {
	return r.db
}

// Insert appends one expense record. Rows are never updated afterwards.
func (r *ExpenseRepository) Insert(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

// List returns cursor-paginated expenses, newest last, optionally filtered by
// a description search.
func (r *ExpenseRepository) List(cursor string, limit int, search string) ([]models.Expense, string, bool, error) {
	var expenses []models.Expense
	query := r.db.
		Order("id ASC").
		Limit(limit + 1)

	if cursor != "" {
		query = query.Where("id > ?", cursor)
	}
	if search != "" {
		query = query.Where("description ILIKE ?", "%"+search+"%")
	}

	if err := query.Find(&expenses).Error; err != nil {
		return nil, "", false, err
	}

	hasMore := false
	var nextCursor string
	if len(expenses) > limit {
		hasMore = true
		nextCursor = expenses[limit-1].ID.String()
		expenses = expenses[:limit]
	}

	return expenses, nextCursor, hasMore, nil
}
