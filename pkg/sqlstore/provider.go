package sqlstore

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/sahayak-ai/sahayak/pkg/utils"
)

type SqlCommons interface {
	GetTable(...interface{}) string
}

type ConnectConfig interface {
	FormatDSN() string
}

type SqlProvider struct {
	master   *sqlx.DB
	replicas []*sqlx.DB
}

type TransactionKey struct{}

func (s *SqlProvider) GetTxFromCtx(ctx context.Context) *sqlx.Tx {
	if tx, ok := ctx.Value(TransactionKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return nil
}

func (s *SqlProvider) GetMaster() *sqlx.DB {
	return s.master
}

func (s *SqlProvider) GetReplica() *sqlx.DB {
	return s.replicas[utils.Random(0, len(s.replicas)-1)]
}

// Transaction runs next inside one sql transaction, nested calls reuse
// the transaction carried by ctx.
func (s *SqlProvider) Transaction(ctx context.Context, next func(ctx context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if tx := s.GetTxFromCtx(ctx); tx != nil {
		return next(ctx)
	}

	tx, err := s.GetMaster().BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil || err != nil {
			slog.Error("Transaction rollbacked", slog.Any("recover", r), slog.Any("error", err))
			_ = tx.Rollback()
		}
	}()

	if err = next(context.WithValue(ctx, TransactionKey{}, tx)); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SqlProvider) initConnection(conf ConnectConfig) *sqlx.DB {
	return sqlx.MustOpen("postgres", conf.FormatDSN())
}

func MustSetupProvider(m ConnectConfig, slaves ...ConnectConfig) *SqlProvider {
	provider := &SqlProvider{}
	provider.master = provider.initConnection(m)

	if len(slaves) == 0 {
		slaves = append(slaves, m)
	}
	for _, v := range slaves {
		provider.replicas = append(provider.replicas, provider.initConnection(v))
	}

	return provider
}
