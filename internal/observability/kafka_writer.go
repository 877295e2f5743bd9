package observability

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
)

type KafkaConfig struct {
	Brokers      []string
	Topic        string
	BatchSize    int
	BatchTimeout time.Duration
	WriteTimeout time.Duration
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaWriter 給 zerolog 當作 io.Writer, 每一行 log 送成一筆 kafka message
type KafkaWriter struct {
	w            messageWriter
	writeTimeout time.Duration
	logId        atomic.Uint64
}

func NewKafkaWriter(cfg KafkaConfig) (*KafkaWriter, error) {
	if len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, fmt.Errorf("kafka log writer needs brokers and topic")
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
		BatchSize:    cfg.BatchSize,
		// 設置較短的超時時間以快速發現問題
		WriteTimeout: cfg.WriteTimeout,
		MaxAttempts:  3,
	}
	return newKafkaWriter(w, cfg.WriteTimeout), nil
}

func newKafkaWriter(w messageWriter, writeTimeout time.Duration) *KafkaWriter {
	return &KafkaWriter{w: w, writeTimeout: writeTimeout}
}

func (kw *KafkaWriter) Write(p []byte) (n int, err error) {
	if kw == nil || kw.w == nil {
		return 0, fmt.Errorf("kafka log writer is not init")
	}

	// key 用流水號, 讓訊息平均分到各分區
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, kw.logId.Add(1))

	// zerolog 會重用 buffer, 必須複製
	value := make([]byte, len(p))
	copy(value, p)

	ctx, cancel := context.WithTimeout(context.Background(), kw.writeTimeout)
	defer cancel()
	if err := kw.w.WriteMessages(ctx, kafka.Message{Key: key, Value: value}); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (kw *KafkaWriter) Close() error {
	return kw.w.Close()
}
