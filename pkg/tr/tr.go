package tr

import (
	"context"

	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	trmcontext "github.com/avito-tech/go-transaction-manager/trm/v2/context"
	"github.com/jackc/pgx/v5"
)

// TxFromCtx извлекает транзакцию (pgx.Tx), открытую менеджером транзакций.
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	t := trmcontext.DefaultManager.Default(ctx)
	if t == nil {
		return nil, e.ErrTransactionNotFound
	}

	tx, ok := t.Transaction().(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}

	return tx, nil
}

// Conn возвращает текущую транзакцию из ctx, а если ее нет — переданный пул.
func Conn(ctx context.Context, db trmpgx.Tr) trmpgx.Tr {
	return trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, db)
}

// InTx сообщает, выполняется ли вызов внутри транзакции.
func InTx(ctx context.Context) bool {
	return trmcontext.DefaultManager.Default(ctx) != nil
}
