package config_repo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"slot_backend/internal/repository"
)

const (
	table        = "runtime_config"
	historyTable = "runtime_config_history"

	colID  = "id"
	colDoc = "doc"

	// В таблице живёт единственная активная строка
	activeRowID = 1
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Реализация хранилища конфигурации поверх Postgres.
// Активный документ лежит одной jsonb-строкой, каждая успешная запись
// дополнительно попадает в журнал истории.
type repo struct {
	dbc *pgxpool.Pool
}

func NewConfigRepository(dbc *pgxpool.Pool) *repo {
	return &repo{
		dbc: dbc,
	}
}

// Migrate создаёт таблицы хранилища, если их ещё нет
func (r *repo) Migrate(ctx context.Context) error {
	_, err := r.dbc.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS `+table+` (
			id int PRIMARY KEY,
			doc jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS `+historyTable+` (
			id bigserial PRIMARY KEY,
			doc jsonb NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		);
	`)
	return err
}

// Load возвращает сохранённый документ конфигурации
func (r *repo) Load(ctx context.Context) ([]byte, error) {
	query := psql.Select(colDoc).
		From(table).
		Where(sq.Eq{colID: activeRowID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc)

	var doc []byte
	err = conn.QueryRow(ctx, sqlStr, args...).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrConfigNotFound
		}
		return nil, err
	}

	return doc, nil
}

// Save перезаписывает активный документ и добавляет запись в историю.
// Вызывается внутри транзакции менеджера, так что обе записи коммитятся атомарно.
func (r *repo) Save(ctx context.Context, doc []byte) error {
	conn := trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc)

	upsert := psql.Insert(table).
		Columns(colID, colDoc).
		Values(activeRowID, doc).
		Suffix("ON CONFLICT (" + colID + ") DO UPDATE SET " + colDoc + " = EXCLUDED." + colDoc + ", updated_at = now()")

	sqlStr, args, err := upsert.ToSql()
	if err != nil {
		return err
	}
	if _, err = conn.Exec(ctx, sqlStr, args...); err != nil {
		return err
	}

	history := psql.Insert(historyTable).
		Columns(colDoc).
		Values(doc)

	sqlStr, args, err = history.ToSql()
	if err != nil {
		return err
	}
	_, err = conn.Exec(ctx, sqlStr, args...)
	return err
}
