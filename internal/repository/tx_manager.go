package repository

import "context"

// トランザクション内で使う約束。
// 注文作成は「価格の読み取り」と「行の挿入」を同一トランザクションで行う。
type TxRepos interface {
	Orders() OrderRepository
	Products() ProductRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
