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

type adminStore struct {
	*MYSQLStore
}

// Admin returns an object implementing Admin interface
func (ms *MYSQLStore) Admin() dependency.Admin {
	return &adminStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) AddAdmin(ctx context.Context, un, pwHash string) error {
	err := ExecNamed(ctx, ms.DB(), `
		INSERT INTO admin (username, password_hash) VALUES (:username, :passwordHash)`,
		map[string]any{
			"username":     un,
			"passwordHash": pwHash,
		})
	if err != nil {
		return fmt.Errorf("can't insert admin: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) DeleteAdmin(ctx context.Context, username string) error {
	err := ExecNamed(ctx, ms.DB(), `DELETE FROM admin WHERE username = :username`,
		map[string]any{"username": username})
	if err != nil {
		return fmt.Errorf("can't delete admin: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) ChangePassword(ctx context.Context, un, newHash string) error {
	err := ExecNamed(ctx, ms.DB(), `
		UPDATE admin SET password_hash = :passwordHash WHERE username = :username`,
		map[string]any{
			"username":     un,
			"passwordHash": newHash,
		})
	if err != nil {
		return fmt.Errorf("can't change password: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) PasswordHashByUsername(ctx context.Context, un string) (string, error) {
	admin, err := ms.GetAdminByUsername(ctx, un)
	if err != nil {
		return "", err
	}
	return admin.PasswordHash, nil
}

func (ms *MYSQLStore) GetAdminByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	admin, err := QueryNamedOne[entity.Admin](ctx, ms.DB(), `
		SELECT * FROM admin WHERE username = :username`,
		map[string]any{"username": username})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrAdminNotFound
		}
		return nil, fmt.Errorf("can't get admin by username: %w", err)
	}
	return &admin, nil
}
