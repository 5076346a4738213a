package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const (
	connectAttempts = 3
	connectDelay    = 5 * time.Second
)

const usersSchema = `
    CREATE TABLE IF NOT EXISTS users (
        id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
        email         TEXT NOT NULL,
        username      TEXT NOT NULL,
        cpf           TEXT NOT NULL,
        zip_code      TEXT NOT NULL,
        password      TEXT NOT NULL,
        profile_image TEXT,
        created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
        updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
        CONSTRAINT users_email_key    UNIQUE (email),
        CONSTRAINT users_username_key UNIQUE (username),
        CONSTRAINT users_cpf_key      UNIQUE (cpf)
    )
`

// NewPostgresPool abre o pool pgx com retry limitado: 3 tentativas com 5s
// de intervalo. O estado do retry é local à chamada; esgotadas as
// tentativas, devolve o último erro e o chamador encerra o processo.
func NewPostgresPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	var lastErr error

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		pool, err := pgxpool.New(ctx, dsn)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				if err = syncSchema(ctx, pool); err == nil {
					log.Info().Msg("conexão com Postgres estabelecida")
					return pool, nil
				}
			}
			pool.Close()
		}

		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("falha ao conectar no Postgres")

		if attempt < connectAttempts {
			select {
			case <-time.After(connectDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("postgres indisponível após %d tentativas: %w", connectAttempts, lastErr)
}

// syncSchema garante a tabela de usuários, como o sync do ORM original.
func syncSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, usersSchema)
	return err
}
