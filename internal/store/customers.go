package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tavolaworks/trattoria-manager/internal/dependency"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
	gerr "github.com/tavolaworks/trattoria-manager/internal/errors"
)

type customersStore struct {
	*MYSQLStore
}

// Customers returns an object implementing Customers interface
func (ms *MYSQLStore) Customers() dependency.Customers {
	return &customersStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) UpsertCustomerByPhone(ctx context.Context, ci *entity.CustomerInsert) (*entity.Customer, error) {
	existing, err := ms.GetCustomerByPhone(ctx, ci.Phone)
	if err == nil {
		// refresh name/email for the known phone number
		err = ExecNamed(ctx, ms.DB(), `
			UPDATE customer SET name = :name, email = :email WHERE id = :id`,
			map[string]any{
				"id":    existing.ID,
				"name":  ci.Name,
				"email": ci.Email,
			})
		if err != nil {
			return nil, fmt.Errorf("can't update customer: %w", err)
		}
		existing.Name = ci.Name
		existing.Email = ci.Email
		return existing, nil
	}
	if !errors.Is(err, gerr.ErrCustomerNotFound) {
		return nil, err
	}

	id, err := ExecNamedLastId(ctx, ms.DB(), `
		INSERT INTO customer (name, phone, email, created_at)
		VALUES (:name, :phone, :email, :createdAt)`,
		map[string]any{
			"name":      ci.Name,
			"phone":     ci.Phone,
			"email":     ci.Email,
			"createdAt": ms.Now(),
		})
	if err != nil {
		return nil, fmt.Errorf("can't insert customer: %w", err)
	}

	return &entity.Customer{
		ID:        id,
		Name:      ci.Name,
		Phone:     ci.Phone,
		Email:     ci.Email,
		CreatedAt: ms.Now(),
	}, nil
}

func (ms *MYSQLStore) GetCustomerByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	customer, err := QueryNamedOne[entity.Customer](ctx, ms.DB(), `
		SELECT * FROM customer WHERE phone = :phone`,
		map[string]any{"phone": phone})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("can't get customer by phone: %w", err)
	}
	return &customer, nil
}

func (ms *MYSQLStore) GetAllCustomers(ctx context.Context) ([]entity.Customer, error) {
	customers, err := QueryListNamed[entity.Customer](ctx, ms.DB(), `
		SELECT * FROM customer ORDER BY created_at, id`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get all customers: %w", err)
	}
	return customers, nil
}

func (ms *MYSQLStore) GetCustomersPaged(ctx context.Context, limit, offset int) ([]entity.Customer, error) {
	customers, err := QueryListNamed[entity.Customer](ctx, ms.DB(), `
		SELECT * FROM customer ORDER BY created_at DESC, id DESC LIMIT :limit OFFSET :offset`,
		map[string]any{
			"limit":  limit,
			"offset": offset,
		})
	if err != nil {
		return nil, fmt.Errorf("can't get customers paged: %w", err)
	}
	return customers, nil
}
