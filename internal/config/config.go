package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

const (
	DefaultPlaceholderImageURL     = "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=500"
	DefaultCartPlaceholderImageURL = "https://via.placeholder.com/150"
	// LeadingProductCount 目錄首屏固定顯示的商品數, 屬於顯示規則, 不開放調整
	LeadingProductCount = 4
)

type Config struct {
	ApiURL                  string        `mapstructure:"STOREFRONT_API_URL"`
	HTTPTimeout             time.Duration `mapstructure:"HTTP_TIMEOUT"`
	LogLevel                string        `mapstructure:"LOG_LEVEL"`
	LogKafkaBrokers         []string      `mapstructure:"LOG_KAFKA_BROKERS"`
	LogKafkaTopic           string        `mapstructure:"LOG_KAFKA_TOPIC"`
	RedisAddr               string        `mapstructure:"REDIS_ADDR"`
	RedisPassword           string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB                 int           `mapstructure:"REDIS_DB"`
	SessionKey              string        `mapstructure:"SESSION_KEY"`
	SessionTTL              time.Duration `mapstructure:"SESSION_TTL"`
	PlaceholderImageURL     string        `mapstructure:"PLACEHOLDER_IMAGE_URL"`
	CartPlaceholderImageURL string        `mapstructure:"CART_PLACEHOLDER_IMAGE_URL"`
	AmbientMedia            []string      `mapstructure:"AMBIENT_MEDIA"` // "分類名稱=影片路徑"
	StubAddr                string        `mapstructure:"STUB_ADDR"`
	StubSeedFile            string        `mapstructure:"STUB_SEED_FILE"`
	StubRateCapacity        int           `mapstructure:"STUB_RATE_CAPACITY"`
	StubRateRefill          time.Duration `mapstructure:"STUB_RATE_REFILL"`
	StubRateBackend         string        `mapstructure:"STUB_RATE_BACKEND"` // memory | redis
	MetricsAddr             string        `mapstructure:"METRICS_ADDR"`
}

var defaults = map[string]any{
	"STOREFRONT_API_URL":         "http://localhost:8080",
	"HTTP_TIMEOUT":               10 * time.Second,
	"LOG_LEVEL":                  "info",
	"LOG_KAFKA_BROKERS":          []string{},
	"LOG_KAFKA_TOPIC":            "storefront-logs",
	"REDIS_ADDR":                 "localhost:6379",
	"REDIS_PASSWORD":             "",
	"REDIS_DB":                   0,
	"SESSION_KEY":                "default",
	"SESSION_TTL":                24 * time.Hour,
	"PLACEHOLDER_IMAGE_URL":      DefaultPlaceholderImageURL,
	"CART_PLACEHOLDER_IMAGE_URL": DefaultCartPlaceholderImageURL,
	"AMBIENT_MEDIA":              []string{"Men=/ManVideo.mp4", "Women=/WomenVideo.mp4", "Gifts=/GiftsVideo.mp4"},
	"STUB_ADDR":                  ":8080",
	"STUB_SEED_FILE":             "",
	"STUB_RATE_CAPACITY":         100,
	"STUB_RATE_REFILL":           100 * time.Millisecond,
	"STUB_RATE_BACKEND":          "memory",
	"METRICS_ADDR":               "",
}

/*
Manager 把 init 跟 read 分開
init : 設置 viper watch 與 onConfigChange
read : 一般讀取, 需要讀寫鎖
*/
type Manager struct {
	v        *viper.Viper
	path     string
	mu       sync.RWMutex
	config   *Config
	onChange []func(*Config)
}

// NewManager path 為空時只讀環境變數與預設值
func NewManager(path string) (*Manager, error) {
	m := &Manager{v: viper.New(), path: path}
	for k, val := range defaults {
		m.v.SetDefault(k, val)
	}
	m.v.AutomaticEnv()
	if path != "" {
		m.v.SetConfigFile(path)
	}

	cf, err := m.load()
	if err != nil {
		return nil, err
	}
	m.config = cf
	return m, nil
}

// Load 一次性讀取設定
func Load(path string) (*Config, error) {
	m, err := NewManager(path)
	if err != nil {
		return nil, err
	}
	return m.Get(), nil
}

func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// OnChange 註冊設定重新載入後的 callback
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = append(m.onChange, fn)
}

// Watch 監看設定檔, 檔案變更時重新載入, 載入失敗保留舊設定
func (m *Manager) Watch(onError func(error)) {
	if m.path == "" {
		return
	}
	m.v.OnConfigChange(func(e fsnotify.Event) {
		if err := m.Reload(); err != nil && onError != nil {
			onError(fmt.Errorf("reload config %s: %w", e.Name, err))
		}
	})
	m.v.WatchConfig()
}

func (m *Manager) Reload() error {
	cf, err := m.load()
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.config = cf
	listeners := append([]func(*Config){}, m.onChange...)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(cf)
	}
	return nil
}

/*
單純回傳錯誤, 由外部決定要不要 Fatal, 畢竟有可能有替代方案
*/
func (m *Manager) load() (*Config, error) {
	if m.path != "" {
		if err := m.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", m.path, err)
		}
	}

	cf := &Config{}
	if err := m.v.Unmarshal(cf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cf.Validate(); err != nil {
		return nil, err
	}
	return cf, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.ApiURL) == "" {
		return fmt.Errorf("STOREFRONT_API_URL is required")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if _, err := ParseAmbientMedia(c.AmbientMedia); err != nil {
		return err
	}
	switch c.StubRateBackend {
	case "", "memory", "redis":
	default:
		return fmt.Errorf("STUB_RATE_BACKEND must be memory or redis, got %q", c.StubRateBackend)
	}
	return nil
}

// AmbientMediaTable 分類名稱 -> 影片路徑
func (c *Config) AmbientMediaTable() map[string]string {
	table, _ := ParseAmbientMedia(c.AmbientMedia)
	return table
}

func ParseAmbientMedia(entries []string) (map[string]string, error) {
	table := make(map[string]string, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, asset, ok := strings.Cut(entry, "=")
		name, asset = strings.TrimSpace(name), strings.TrimSpace(asset)
		if !ok || name == "" || asset == "" {
			return nil, fmt.Errorf("invalid AMBIENT_MEDIA entry %q, want name=asset", entry)
		}
		table[name] = asset
	}
	return table, nil
}
