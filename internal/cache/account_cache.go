package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bankmanage/internal/model"
)

const (
	accountKeyPrefix = "bankaccount:"
	pageKeyPrefix    = "bankaccounts:"

	accountCacheTTL = 5 * time.Minute
)

// AccountCache is the read-through cache in front of account detail and list
// queries. Keys follow the scheme "bankaccount:<card>" for details and
// "bankaccounts:<pageNo>-<pageSize>-<userId>" for pages; every mutating
// operation invalidates the touched detail keys and all page keys before it
// returns to the caller.
type AccountCache interface {
	GetAccount(ctx context.Context, cardNumber string) (*model.AccountView, bool)
	SetAccount(ctx context.Context, cardNumber string, view *model.AccountView)
	GetPage(ctx context.Context, pageNo, pageSize int, userID string) (*model.AccountPage, bool)
	SetPage(ctx context.Context, pageNo, pageSize int, userID string, page *model.AccountPage)
	InvalidateAccounts(ctx context.Context, cardNumbers ...string)
	InvalidatePages(ctx context.Context)
}

type accountCache struct {
	client *Client
}

// NewAccountCache creates an AccountCache backed by the redis client.
func NewAccountCache(client *Client) AccountCache {
	return &accountCache{client: client}
}

func accountKey(cardNumber string) string {
	return accountKeyPrefix + cardNumber
}

func pageKey(pageNo, pageSize int, userID string) string {
	return fmt.Sprintf("%s%d-%d-%s", pageKeyPrefix, pageNo, pageSize, userID)
}

func (c *accountCache) GetAccount(ctx context.Context, cardNumber string) (*model.AccountView, bool) {
	data, _ := c.client.Get(ctx, accountKey(cardNumber))
	if data == nil {
		return nil, false
	}
	var view model.AccountView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, false
	}
	return &view, true
}

func (c *accountCache) SetAccount(ctx context.Context, cardNumber string, view *model.AccountView) {
	payload, err := json.Marshal(view)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, accountKey(cardNumber), payload, accountCacheTTL)
}

func (c *accountCache) GetPage(ctx context.Context, pageNo, pageSize int, userID string) (*model.AccountPage, bool) {
	data, _ := c.client.Get(ctx, pageKey(pageNo, pageSize, userID))
	if data == nil {
		return nil, false
	}
	var page model.AccountPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, false
	}
	return &page, true
}

func (c *accountCache) SetPage(ctx context.Context, pageNo, pageSize int, userID string, page *model.AccountPage) {
	payload, err := json.Marshal(page)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, pageKey(pageNo, pageSize, userID), payload, accountCacheTTL)
}

func (c *accountCache) InvalidateAccounts(ctx context.Context, cardNumbers ...string) {
	keys := make([]string, 0, len(cardNumbers))
	for _, cardNumber := range cardNumbers {
		keys = append(keys, accountKey(cardNumber))
	}
	_ = c.client.Delete(ctx, keys...)
}

func (c *accountCache) InvalidatePages(ctx context.Context) {
	_ = c.client.DeletePattern(ctx, pageKeyPrefix+"*")
}
