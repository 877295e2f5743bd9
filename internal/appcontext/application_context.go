package appcontext

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/infra/backend"
	"github.com/RoyceAzure/lab/storefront/internal/infra/identity"
	"github.com/RoyceAzure/lab/storefront/internal/observability"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var (
	_ service.IOrderBackend   = (*backend.Client)(nil)
	_ service.ICatalogBackend = (*backend.Client)(nil)
)

type ApplicationContext struct {
	Cf          *config.Config
	Logger      zerolog.Logger
	KafkaWriter *observability.KafkaWriter
	Redis       *redis.Client
	Identity    *identity.Provider
	Backend     *backend.Client
	Registry    *prometheus.Registry
	Observer    observability.IObserver
	Session     *service.OrderSession
	Catalog     *service.CatalogView

	logOut io.Writer
}

type Option func(*ApplicationContext)

// WithLogOutput 預設寫到 stderr
func WithLogOutput(w io.Writer) Option {
	return func(app *ApplicationContext) { app.logOut = w }
}

func NewApplicationContext(cf *config.Config, opts ...Option) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf:     cf,
		logOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(&app)
	}
	if err := app.Init(); err != nil {
		_ = app.Shutdown(context.Background())
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"logger", app.setUpLogger},
		{"redis", app.setUpRedis},
		{"identity", app.setUpIdentity},
		{"backend client", app.setUpBackend},
		{"observer", app.setUpObserver},
		{"order session", app.setUpOrderSession},
		{"catalog view", app.setUpCatalogView},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("setup %s: %w", step.name, err)
		}
		app.Logger.Debug().Str("step", step.name).Msg("setup finished")
	}
	return nil
}

// 有設定 kafka broker 時, log 同時送到 kafka
func (app *ApplicationContext) setUpLogger() error {
	opts := []observability.LoggerOption{
		observability.WithLevel(app.Cf.LogLevel),
		observability.WithConsole(),
		observability.WithOutput(app.logOut),
	}
	if len(app.Cf.LogKafkaBrokers) > 0 {
		w, err := observability.NewKafkaWriter(observability.KafkaConfig{
			Brokers: app.Cf.LogKafkaBrokers,
			Topic:   app.Cf.LogKafkaTopic,
		})
		if err != nil {
			return err
		}
		app.KafkaWriter = w
		opts = append(opts, observability.WithExtraWriter(w))
	}
	app.Logger = observability.NewLogger("storefront", opts...)
	return nil
}

func (app *ApplicationContext) setUpRedis() error {
	app.Redis = redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPassword,
		DB:       app.Cf.RedisDB,
	})
	return nil
}

func (app *ApplicationContext) setUpIdentity() error {
	store := identity.NewRedisTokenStore(app.Redis, app.Cf.SessionKey, app.Cf.SessionTTL)
	app.Identity = identity.NewProvider(store, app.Cf.HTTPTimeout)
	return nil
}

func (app *ApplicationContext) setUpBackend() error {
	client, err := backend.NewClient(app.Cf.ApiURL,
		backend.WithTimeout(app.Cf.HTTPTimeout),
		backend.WithTokenSource(app.Identity),
	)
	if err != nil {
		return err
	}
	app.Backend = client
	return nil
}

func (app *ApplicationContext) setUpObserver() error {
	app.Registry = prometheus.NewRegistry()
	app.Observer = observability.Multi(
		observability.NewZerologObserver(app.Logger),
		observability.NewMetricsObserver(app.Registry),
	)
	return nil
}

func (app *ApplicationContext) setUpOrderSession() error {
	app.Session = service.NewOrderSession(app.Backend, app.Identity, service.WithOrderObserver(app.Observer))
	return nil
}

func (app *ApplicationContext) setUpCatalogView() error {
	app.Catalog = service.NewCatalogView(app.Backend,
		service.WithCatalogObserver(app.Observer),
		service.WithMediaTable(service.MediaTable(app.Cf.AmbientMediaTable())),
		service.WithPlaceholderImage(app.Cf.PlaceholderImageURL),
	)
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	var errs []error
	if app.Redis != nil {
		if err := app.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if app.KafkaWriter != nil {
		if err := app.KafkaWriter.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kafka writer: %w", err))
		}
	}
	return errors.Join(errs...)
}
