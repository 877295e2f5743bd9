package identity

import (
	"context"
	"time"
)

// IIdentityProvider 只回答目前是否已登入, 核心邏輯不處理帳密
type IIdentityProvider interface {
	IsAuthenticated() bool
}

// ITokenSource 提供呼叫後端用的 bearer token
type ITokenSource interface {
	Token(ctx context.Context) (string, error)
}

/*
Provider 每次詢問都重新讀取 token store, 不快取登入狀態,
兩次詢問之間可能發生登入或登出
*/
type Provider struct {
	store   ITokenStore
	timeout time.Duration
}

func NewProvider(store ITokenStore, timeout time.Duration) *Provider {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Provider{store: store, timeout: timeout}
}

var (
	_ IIdentityProvider = (*Provider)(nil)
	_ ITokenSource      = (*Provider)(nil)
)

// IsAuthenticated store 讀取失敗視為未登入
func (p *Provider) IsAuthenticated() bool {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	token, err := p.store.Load(ctx)
	return err == nil && token != ""
}

func (p *Provider) Token(ctx context.Context) (string, error) {
	return p.store.Load(ctx)
}

func (p *Provider) Login(ctx context.Context, token string) error {
	return p.store.Save(ctx, token)
}

func (p *Provider) Logout(ctx context.Context) error {
	return p.store.Delete(ctx)
}
