// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
	domainerror "github.com/slaxamine/savvy-gemini-wallet/internal/domain/error"
	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/persistence"
)

func newTestSession(t *testing.T) *persistence.Session {
	t.Helper()
	session, err := persistence.NewSession(context.Background(), persistence.NewMemoryGateway(), entity.DefaultBalance)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return session
}

func TestCreateCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	useCase := NewCreateCategoryUseCase(session)

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := useCase.Execute(ctx, CreateCategoryInput{Name: "   ", Color: "#FF0000"})

		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryNameEmpty {
			t.Errorf("expected empty name error, got %v", err)
		}
	})

	t.Run("rejects over-long name", func(t *testing.T) {
		_, err := useCase.Execute(ctx, CreateCategoryInput{
			Name:  strings.Repeat("x", MaxCategoryNameLength+1),
			Color: "#FF0000",
		})

		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryNameTooLong {
			t.Errorf("expected name too long error, got %v", err)
		}
	})

	t.Run("rejects invalid color", func(t *testing.T) {
		for _, color := range []string{"red", "FF0000", "#GG0000", "#FF00", ""} {
			_, err := useCase.Execute(ctx, CreateCategoryInput{Name: "Pets", Color: color})

			var catErr *domainerror.CategoryError
			if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeInvalidColorFormat {
				t.Errorf("color %q: expected invalid color error, got %v", color, err)
			}
		}
	})

	t.Run("accepts three-digit hex color", func(t *testing.T) {
		output, err := useCase.Execute(ctx, CreateCategoryInput{Name: "Pets", Color: "#F00"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Color != "#F00" {
			t.Errorf("expected color #F00, got %s", output.Category.Color)
		}
	})

	t.Run("rejects duplicate name case-insensitively", func(t *testing.T) {
		_, err := useCase.Execute(ctx, CreateCategoryInput{Name: "fOOd", Color: "#FF0000"})

		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryNameExists {
			t.Errorf("expected name exists error, got %v", err)
		}
	})

	t.Run("trims the name and applies the default icon", func(t *testing.T) {
		output, err := useCase.Execute(ctx, CreateCategoryInput{Name: "  Travel  ", Color: "#123ABC"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != "Travel" {
			t.Errorf("expected trimmed name 'Travel', got %q", output.Category.Name)
		}
		if output.Category.Icon != entity.DefaultCategoryIcon {
			t.Errorf("expected default icon, got %q", output.Category.Icon)
		}
	})

	t.Run("keeps an explicit icon", func(t *testing.T) {
		output, err := useCase.Execute(ctx, CreateCategoryInput{Name: "Gifts", Color: "#123ABC", Icon: "gift"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Icon != "gift" {
			t.Errorf("expected icon 'gift', got %q", output.Category.Icon)
		}
	})
}

func TestDeleteCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	useCase := NewDeleteCategoryUseCase(session, session)

	categories, _ := session.Categories(ctx)
	food := categories[0]

	t.Run("unknown category returns not found", func(t *testing.T) {
		_, err := useCase.Execute(ctx, DeleteCategoryInput{CategoryID: uuid.New()})

		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryNotFound {
			t.Errorf("expected not found error, got %v", err)
		}
	})

	t.Run("referenced category cannot be deleted", func(t *testing.T) {
		txn := entity.NewTransaction(decimal.NewFromInt(10), entity.TransactionTypeExpense, food.ID, "", food.CreatedAt)
		if err := session.AppendTransaction(ctx, txn); err != nil {
			t.Fatalf("failed to append transaction: %v", err)
		}

		_, err := useCase.Execute(ctx, DeleteCategoryInput{CategoryID: food.ID})

		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryInUse {
			t.Errorf("expected in-use error, got %v", err)
		}

		// The guard is re-evaluated per call: once the transaction is gone,
		// the delete goes through.
		if _, err := session.RemoveTransaction(ctx, txn.ID); err != nil {
			t.Fatalf("failed to remove transaction: %v", err)
		}
		output, err := useCase.Execute(ctx, DeleteCategoryInput{CategoryID: food.ID})
		if err != nil {
			t.Fatalf("unexpected error after freeing the category: %v", err)
		}
		if !output.Success {
			t.Error("expected Success to be true")
		}
	})

	t.Run("unreferenced category deletes cleanly", func(t *testing.T) {
		remaining, _ := session.Categories(ctx)
		target := remaining[0]

		if _, err := useCase.Execute(ctx, DeleteCategoryInput{CategoryID: target.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := session.FindCategory(ctx, target.ID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Error("expected the category to be gone")
		}
	})
}

func TestListCategoriesUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	useCase := NewListCategoriesUseCase(session)

	output, err := useCase.Execute(ctx, ListCategoriesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("returns all categories in insertion order", func(t *testing.T) {
		if len(output.Categories) != 8 {
			t.Fatalf("expected 8 categories, got %d", len(output.Categories))
		}
		if output.Categories[0].Name != "Food" {
			t.Errorf("expected Food first, got %s", output.Categories[0].Name)
		}
	})

	t.Run("groups by derived type", func(t *testing.T) {
		if len(output.Expense) != 6 {
			t.Errorf("expected 6 expense categories, got %d", len(output.Expense))
		}
		if len(output.Income) != 2 {
			t.Errorf("expected 2 income categories, got %d", len(output.Income))
		}
		for _, cat := range output.Income {
			if cat.Type() != entity.CategoryTypeIncome {
				t.Errorf("category %s grouped as income but derives %s", cat.Name, cat.Type())
			}
		}
	})
}
