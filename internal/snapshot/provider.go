package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/config"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/repository"
)

const cacheKey = "scrum_master:snapshot"

var ErrNoSnapshot = errors.New("当前没有可用的快照")

// Provider 负责快照的获取、缓存和原子替换：
// 配置了 FETCH_URL 时从表格导出地址拉取，否则从数据库组装；
// 拉取结果在 redis 里缓存一天，启动时优先用缓存预热。
// 快照引用只会整体替换，引擎拿到的永远是不可变的数据
type Provider struct {
	cfg        *config.Config
	repo       *repository.Repository
	rdb        *redis.Client
	httpClient *http.Client

	mu      sync.RWMutex
	current *domain.Snapshot
}

func NewProvider(cfg *config.Config, repo *repository.Repository, rdb *redis.Client) *Provider {
	return &Provider{
		cfg:  cfg,
		repo: repo,
		rdb:  rdb,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Fetch.Timeout) * time.Second,
		},
	}
}

// Current 返回当前快照，没有任何数据时返回 ErrNoSnapshot
func (p *Provider) Current() (*domain.Snapshot, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.current == nil {
		return nil, ErrNoSnapshot
	}
	return p.current, nil
}

// Warm 启动时尝试用 redis 缓存预热，缓存不可用或未命中时直接刷新
func (p *Provider) Warm(ctx context.Context) error {
	payload, err := p.rdb.Get(ctx, cacheKey).Bytes()
	if err == nil {
		snapshot := &domain.Snapshot{}
		if err := json.Unmarshal(payload, snapshot); err == nil {
			p.swap(snapshot)
			slog.Info("已从缓存加载快照", "teamMembers", len(snapshot.TeamMembers), "dayRules", len(snapshot.DayRules))
			return nil
		}
		slog.Warn("缓存中的快照无法解析，将重新获取", "error", err)
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("无法读取快照缓存", "error", err)
	}

	_, err = p.Refresh(ctx)
	return err
}

// Refresh 重新获取快照并替换当前引用，同时回写缓存
func (p *Provider) Refresh(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := p.fetch(ctx)
	if err != nil {
		return nil, err
	}

	p.swap(snapshot)

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return snapshot, nil
	}
	expiration := time.Duration(p.cfg.Fetch.CacheExpiration) * time.Second
	if err := p.rdb.Set(ctx, cacheKey, payload, expiration).Err(); err != nil {
		// 缓存失败不影响刷新结果
		slog.Warn("无法写入快照缓存", "error", err)
	}

	return snapshot, nil
}

func (p *Provider) swap(snapshot *domain.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = snapshot
}

func (p *Provider) fetch(ctx context.Context) (*domain.Snapshot, error) {
	if p.cfg.Fetch.URL == "" {
		return p.repo.LoadSnapshot()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.Fetch.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("拉取快照失败: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.Snapshot{}
	if err := json.Unmarshal(body, snapshot); err != nil {
		return nil, fmt.Errorf("快照反序列化失败: %w", err)
	}

	return snapshot, nil
}
