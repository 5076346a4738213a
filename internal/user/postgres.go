package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// PostgresRepository implementa Repository sobre o pool pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository cria o repositório de usuários.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// List devolve todos os usuários ordenados por criação.
func (r *PostgresRepository) List(ctx context.Context) ([]User, error) {
	const query = `
        SELECT id, email, username, cpf, zip_code, password, profile_image, created_at, updated_at
        FROM users
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return users, nil
}

// GetByID busca usuário pelo identificador.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	const query = `
        SELECT id, email, username, cpf, zip_code, password, profile_image, created_at, updated_at
        FROM users
        WHERE id = $1
    `

	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetCredentials busca apenas id, username e hash da senha para o login.
func (r *PostgresRepository) GetCredentials(ctx context.Context, username string) (*Credentials, error) {
	const query = `
        SELECT id, username, password
        FROM users
        WHERE username = $1
    `

	var creds Credentials
	err := r.pool.QueryRow(ctx, query, username).Scan(&creds.ID, &creds.Username, &creds.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &creds, nil
}

// Create insere um novo usuário e devolve os dados persistidos.
// Violações de unicidade voltam como DuplicateError com o campo em conflito.
func (r *PostgresRepository) Create(ctx context.Context, input CreateInput) (*User, error) {
	const query = `
        INSERT INTO users (email, username, cpf, zip_code, password, profile_image)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, email, username, cpf, zip_code, password, profile_image, created_at, updated_at
    `

	u, err := scanUser(r.pool.QueryRow(ctx, query,
		strings.TrimSpace(input.Email),
		strings.TrimSpace(input.Username),
		strings.TrimSpace(input.CPF),
		strings.TrimSpace(input.ZipCode),
		input.Password,
		input.ProfileImage,
	))
	if err != nil {
		return nil, translateUnique(err)
	}
	return u, nil
}

// Update aplica atualização parcial e devolve o número de linhas afetadas.
func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (int64, error) {
	setParts := []string{}
	args := []any{}
	idx := 1

	appendSet := func(column string, value any) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if input.Email != nil {
		appendSet("email", strings.TrimSpace(*input.Email))
	}
	if input.Username != nil {
		appendSet("username", strings.TrimSpace(*input.Username))
	}
	if input.CPF != nil {
		appendSet("cpf", strings.TrimSpace(*input.CPF))
	}
	if input.ZipCode != nil {
		appendSet("zip_code", strings.TrimSpace(*input.ZipCode))
	}
	if input.Password != nil {
		appendSet("password", *input.Password)
	}
	if input.ProfileImage != nil {
		appendSet("profile_image", *input.ProfileImage)
	}

	if len(setParts) == 0 {
		return 0, nil
	}

	setParts = append(setParts, "updated_at = now()")
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(setParts, ", "), idx)
	args = append(args, id)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, translateUnique(err)
	}
	return tag.RowsAffected(), nil
}

// Delete remove o usuário e informa se alguma linha foi apagada.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// translateUnique converte violação de unicidade do Postgres no erro
// tipado da aplicação, extraindo o campo do nome da constraint.
func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}

	field := strings.TrimSuffix(strings.TrimPrefix(pgErr.ConstraintName, "users_"), "_key")
	if field == "zip_code" {
		field = "zipCode"
	}
	if field == "" {
		field = "field"
	}

	return &DuplicateError{Field: field}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.CPF,
		&u.ZipCode,
		&u.Password,
		&u.ProfileImage,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
