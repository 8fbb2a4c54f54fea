// Package sync orchestrates calls to the remote ledger API. Every
// operation checks the credential store first and only mutates the local
// caches after the remote call succeeds, so a failed request leaves the
// client exactly as it was.
package sync

import (
	"errors"
	"fmt"

	"github.com/arlopurcell/ledgy/internal/entry"
	"github.com/arlopurcell/ledgy/internal/model"
	"github.com/arlopurcell/ledgy/internal/registry"
	"github.com/arlopurcell/ledgy/internal/store"
)

// ErrRequestFailed wraps any remote failure (transport error or
// non-success status). No local state is mutated when it is returned.
var ErrRequestFailed = errors.New("request failed")

// API is the remote surface the controller drives.
type API interface {
	GetLedger(token, account string) (*model.LedgerSnapshot, error)
	ListLedgers(token string) ([]string, error)
	GetCrons(token, account string) ([]model.Cron, error)
	CreateTransaction(token, account string, kind model.Kind, amount int64, description string) error
	EditTransaction(token, account string, rowid, amount int64, description string) error
	InitLedger(token, account string) error
	CreateCron(token, account string, spec model.CronSpec) error
	DeleteCron(token, account string, rowid int64) error
}

// Credentials supplies the authorization token. Get returns
// creds.ErrAuthRequired when none is stored.
type Credentials interface {
	Get() (string, error)
	Set(token string) error
}

// Controller is the sole writer of the account registry and the cache
// repository; everything else reads them.
type Controller struct {
	api      API
	creds    Credentials
	registry *registry.Registry
	repo     store.Repository
}

func NewController(api API, creds Credentials, reg *registry.Registry, repo store.Repository) *Controller {
	return &Controller{api: api, creds: creds, registry: reg, repo: repo}
}

func requestFailed(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrRequestFailed, op, err)
}

// Login stores a fresh credential and performs the full resync the
// credential contract requires: account registry plus current ledger.
func (c *Controller) Login(token string) error {
	if err := c.creds.Set(token); err != nil {
		return err
	}
	if err := c.ReloadAccounts(); err != nil {
		return err
	}
	_, err := c.ReloadLedger(c.registry.Current())
	return err
}

// ReloadAccounts replaces the account registry with the server list.
func (c *Controller) ReloadAccounts() error {
	token, err := c.creds.Get()
	if err != nil {
		return err
	}

	names, err := c.api.ListLedgers(token)
	if err != nil {
		return requestFailed("list accounts", err)
	}
	return c.registry.Replace(names)
}

// ReloadLedger fetches and caches the snapshot for one account. The cache
// slot written is always the account the request was issued for, even if
// the current account has changed since.
func (c *Controller) ReloadLedger(account string) (*model.LedgerSnapshot, error) {
	token, err := c.creds.Get()
	if err != nil {
		return nil, err
	}

	snap, err := c.api.GetLedger(token, account)
	if err != nil {
		return nil, requestFailed("reload ledger", err)
	}
	if err := c.repo.ReplaceSnapshot(account, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// ReloadCrons fetches and caches the cron list for one account.
func (c *Controller) ReloadCrons(account string) ([]model.Cron, error) {
	token, err := c.creds.Get()
	if err != nil {
		return nil, err
	}

	crons, err := c.api.GetCrons(token, account)
	if err != nil {
		return nil, requestFailed("reload crons", err)
	}
	if err := c.repo.ReplaceCrons(account, crons); err != nil {
		return nil, err
	}
	return crons, nil
}

// CachedLedger reads the last synced snapshot without touching the
// network, for offline display.
func (c *Controller) CachedLedger(account string) (*model.LedgerSnapshot, error) {
	return c.repo.GetSnapshot(account)
}

// CachedCrons reads the last synced cron list without touching the network.
func (c *Controller) CachedCrons(account string) ([]model.Cron, error) {
	return c.repo.GetCrons(account)
}

// Submit sends a compiled entry submission for the given account and, on
// success, refreshes the ledger snapshot (and the cron list for
// recurrence creates).
func (c *Controller) Submit(account string, sub entry.Submission) error {
	token, err := c.creds.Get()
	if err != nil {
		return err
	}

	switch {
	case sub.Cron != nil:
		if err := c.api.CreateCron(token, account, *sub.Cron); err != nil {
			return requestFailed("create recurring transaction", err)
		}
		if _, err := c.ReloadLedger(account); err != nil {
			return err
		}
		_, err := c.ReloadCrons(account)
		return err
	case sub.Edit:
		if err := c.api.EditTransaction(token, account, sub.RowID, sub.Amount, sub.Description); err != nil {
			return requestFailed("edit transaction", err)
		}
	default:
		if err := c.api.CreateTransaction(token, account, sub.Kind, sub.Amount, sub.Description); err != nil {
			return requestFailed("send transaction", err)
		}
	}

	_, err = c.ReloadLedger(account)
	return err
}

// CreateAccount asks the server to initialize a new ledger, then reloads
// the registry and the now-current ledger.
func (c *Controller) CreateAccount(name string) error {
	token, err := c.creds.Get()
	if err != nil {
		return err
	}

	if err := c.api.InitLedger(token, name); err != nil {
		return requestFailed("create account", err)
	}
	if err := c.ReloadAccounts(); err != nil {
		return err
	}
	_, err = c.ReloadLedger(c.registry.Current())
	return err
}

// DeleteCron removes a recurrence definition and refreshes the cron cache.
func (c *Controller) DeleteCron(account string, rowid int64) error {
	token, err := c.creds.Get()
	if err != nil {
		return err
	}

	if err := c.api.DeleteCron(token, account, rowid); err != nil {
		return requestFailed("delete recurring transaction", err)
	}
	_, err = c.ReloadCrons(account)
	return err
}
