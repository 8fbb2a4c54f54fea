package store

import "github.com/arlopurcell/ledgy/internal/model"

// RAMStore keeps the cache in process memory. It backs tests and serves
// as the fallback when the sqlite cache cannot be opened.
type RAMStore struct {
	snapshots map[string]*model.LedgerSnapshot
	crons     map[string][]model.Cron
}

func NewRAMStore() *RAMStore {
	return &RAMStore{
		snapshots: make(map[string]*model.LedgerSnapshot),
		crons:     make(map[string][]model.Cron),
	}
}

func (s *RAMStore) ReplaceSnapshot(account string, snap *model.LedgerSnapshot) error {
	copied := *snap
	copied.Credits = append([]model.Transaction(nil), snap.Credits...)
	copied.Debits = append([]model.Transaction(nil), snap.Debits...)
	s.snapshots[account] = &copied
	return nil
}

func (s *RAMStore) GetSnapshot(account string) (*model.LedgerSnapshot, error) {
	snap, ok := s.snapshots[account]
	if !ok {
		return nil, ErrNoSnapshot
	}
	copied := *snap
	copied.Credits = append([]model.Transaction(nil), snap.Credits...)
	copied.Debits = append([]model.Transaction(nil), snap.Debits...)
	return &copied, nil
}

func (s *RAMStore) ReplaceCrons(account string, crons []model.Cron) error {
	s.crons[account] = append([]model.Cron(nil), crons...)
	return nil
}

func (s *RAMStore) GetCrons(account string) ([]model.Cron, error) {
	return append([]model.Cron(nil), s.crons[account]...), nil
}

func (s *RAMStore) Close() error { return nil }
