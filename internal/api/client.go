// Package api is the HTTP client for the remote ledger service. It does
// no caching and no credential checking of its own; the sync controller
// owns both concerns.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/arlopurcell/ledgy/internal/model"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
	}
}

type ledgerListResponse struct {
	Ledgers []string `json:"ledgers"`
}

type cronListResponse struct {
	Crons []model.Cron `json:"crons"`
}

type transactionRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// GetLedger fetches the wholesale snapshot for one account.
func (c *Client) GetLedger(token, account string) (*model.LedgerSnapshot, error) {
	var snap model.LedgerSnapshot
	if err := c.getJSON(token, "/"+account, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ListLedgers returns the account names in server order.
func (c *Client) ListLedgers(token string) ([]string, error) {
	var list ledgerListResponse
	if err := c.getJSON(token, "/list", &list); err != nil {
		return nil, err
	}
	return list.Ledgers, nil
}

// GetCrons returns all recurring-transaction definitions for an account.
func (c *Client) GetCrons(token, account string) ([]model.Cron, error) {
	var list cronListResponse
	if err := c.getJSON(token, "/"+account+"/crons", &list); err != nil {
		return nil, err
	}
	return list.Crons, nil
}

// CreateTransaction posts a one-shot credit or debit.
func (c *Client) CreateTransaction(token, account string, kind model.Kind, amount int64, description string) error {
	path := fmt.Sprintf("/%s/%s", account, kind)
	return c.postJSON(token, path, transactionRequest{Amount: amount, Description: description})
}

// EditTransaction replaces the amount and description of an existing row.
func (c *Client) EditTransaction(token, account string, rowid, amount int64, description string) error {
	path := fmt.Sprintf("/%s/edit/%d", account, rowid)
	return c.postJSON(token, path, transactionRequest{Amount: amount, Description: description})
}

// InitLedger asks the server to create a new account.
func (c *Client) InitLedger(token, account string) error {
	return c.postJSON(token, "/"+account+"/init", nil)
}

// CreateCron posts a new recurring-transaction definition.
func (c *Client) CreateCron(token, account string, spec model.CronSpec) error {
	return c.postJSON(token, "/"+account+"/cron", spec)
}

// DeleteCron removes a recurring-transaction definition by row id.
func (c *Client) DeleteCron(token, account string, rowid int64) error {
	path := fmt.Sprintf("/%s/cron/%d", account, rowid)
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(token, req, nil)
}

func (c *Client) getJSON(token, path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(token, req, out)
}

func (c *Client) postJSON(token, path string, body any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	return c.do(token, req, nil)
}

func (c *Client) do(token string, req *http.Request, out any) error {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("cannot %s %s: %s", req.Method, req.URL.Path, resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}
