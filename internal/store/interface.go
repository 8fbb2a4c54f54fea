package store

import "github.com/arlopurcell/ledgy/internal/model"

// Repository is the local cache of server state, read when offline and
// replaced wholesale per account after every successful sync. The sync
// controller is the only writer.
type Repository interface {
	ReplaceSnapshot(account string, snap *model.LedgerSnapshot) error
	GetSnapshot(account string) (*model.LedgerSnapshot, error)

	ReplaceCrons(account string, crons []model.Cron) error
	GetCrons(account string) ([]model.Cron, error)

	Close() error
}
