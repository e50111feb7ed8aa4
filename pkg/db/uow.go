package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UOW wraps a single pgx transaction so that every application operation is
// all-or-nothing. Begin, then defer Finalize(&err).
type UOW struct {
	Pool *pgxpool.Pool
	Tx   pgx.Tx
}

func (u *UOW) Begin() (pgx.Tx, error) {
	tx, err := u.Pool.BeginTx(context.Background(), pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("can't begin tx, %v", err)
	}
	u.Tx = tx
	return u.Tx, nil
}

func (u *UOW) Commit() error {
	if u.Tx == nil {
		return fmt.Errorf("transaction is not started yet")
	}
	return u.Tx.Commit(context.Background())
}

func (u *UOW) Rollback() error {
	if u.Tx == nil {
		return fmt.Errorf("transaction is not started yet")
	}
	return u.Tx.Rollback(context.Background())
}

// Finalize commits the transaction when *err is nil, otherwise rolls back.
// A commit failure is written back through err so callers see it.
func (u *UOW) Finalize(err *error) {
	if u.Tx == nil {
		return
	}
	if *err != nil {
		if rbErr := u.Tx.Rollback(context.Background()); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "err", rbErr)
		}
		return
	}
	if cmErr := u.Tx.Commit(context.Background()); cmErr != nil {
		*err = fmt.Errorf("can't commit tx, %v", cmErr)
	}
}

type UOWFactory struct {
	Pool *pgxpool.Pool
}

func NewUoWFactory(pool *pgxpool.Pool) *UOWFactory {
	return &UOWFactory{Pool: pool}
}

func (u *UOWFactory) GetUoW() *UOW {
	return &UOW{Pool: u.Pool}
}
