package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

const (
	versionKey = "availability:ver"
	defaultTTL = 30 * time.Second
)

// Availability guarda snapshots do resultado da busca de janelas no Redis.
// O cache é apenas consultivo: a transação de claim revalida tudo no banco,
// então um snapshot levemente velho nunca compromete a correção.
//
// A invalidação usa um contador de versão global: toda mutação de slot
// incrementa a versão, e a versão faz parte da chave — entradas antigas
// simplesmente expiram pelo TTL.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

// New retorna nil quando o Redis não está configurado; os use cases
// tratam cache nil como desligado.
func New(cfg *config.Config) *Availability {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, availability cache disabled: %v", err)
		return nil
	}

	return &Availability{rdb: rdb, ttl: defaultTTL}
}

func (c *Availability) key(barberID, serviceID uint, date string) string {
	ver, err := c.rdb.Get(context.Background(), versionKey).Int64()
	if err != nil {
		ver = 0
	}
	return fmt.Sprintf("availability:v%d:b%d:s%d:d%s", ver, barberID, serviceID, date)
}

func (c *Availability) Get(
	ctx context.Context,
	barberID uint,
	serviceID uint,
	date string,
) ([]domain.CandidateWindow, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, c.key(barberID, serviceID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var windows []domain.CandidateWindow
	if err := json.Unmarshal(raw, &windows); err != nil {
		return nil, false
	}

	return windows, true
}

func (c *Availability) Set(
	ctx context.Context,
	barberID uint,
	serviceID uint,
	date string,
	windows []domain.CandidateWindow,
) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(windows)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, c.key(barberID, serviceID, date), raw, c.ttl).Err(); err != nil {
		log.Printf("availability cache set failed: %v", err)
	}
}

// Bump invalida todos os snapshots (nova versão de chave).
// Chamado após qualquer mutação de slot.
func (c *Availability) Bump(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Incr(ctx, versionKey).Err(); err != nil {
		log.Printf("availability cache bump failed: %v", err)
	}
}
