package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUserNotFound = errors.New("user not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) FindByUsername(ctx context.Context, username string) (User, string, error) {
	var user User
	var passwordHash string
	err := s.DB.QueryRow(ctx, `
    SELECT id, username, name, role, COALESCE(base_salary, 0), password_hash, created_at
    FROM users
    WHERE username = $1
  `, username).Scan(&user.ID, &user.Username, &user.Name, &user.Role, &user.BaseSalary, &passwordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, "", ErrUserNotFound
	}
	if err != nil {
		return User{}, "", err
	}
	return user, passwordHash, nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (User, error) {
	var user User
	err := s.DB.QueryRow(ctx, `
    SELECT id, username, name, role, COALESCE(base_salary, 0), created_at
    FROM users
    WHERE id = $1
  `, userID).Scan(&user.ID, &user.Username, &user.Name, &user.Role, &user.BaseSalary, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return user, ErrUserNotFound
	}
	return user, err
}

func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, username, name, role, COALESCE(base_salary, 0), created_at
    FROM users
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Username, &user.Name, &user.Role, &user.BaseSalary, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *Store) CreateUser(ctx context.Context, username, name, role, passwordHash string, baseSalary float64) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (username, name, role, password_hash, base_salary)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, username, name, role, passwordHash, baseSalary).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateRole(ctx context.Context, userID, role string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE users SET role = $1 WHERE id = $2", role, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *Store) UpdateBaseSalary(ctx context.Context, userID string, baseSalary float64) error {
	tag, err := s.DB.Exec(ctx, "UPDATE users SET base_salary = $1 WHERE id = $2", baseSalary, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM users WHERE id = $1", userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM users").Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
