package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// AvailabilityCache guarda a lista de horários livres por (barbearia, dia).
//
// Cada invalidação incrementa uma versão. Quem calcula a lista lê a versão
// antes de consultar as reservas e grava com SetIfVersion: se houve
// invalidação no meio, a escrita é descartada.
type AvailabilityCache interface {
	Get(ctx context.Context, barbershopID uint, date string) ([]string, bool, error)
	Set(ctx context.Context, barbershopID uint, date string, slots []string) error
	Version(ctx context.Context, barbershopID uint, date string) (Version, error)
	SetIfVersion(ctx context.Context, barbershopID uint, date string, v Version, slots []string) (bool, error)
	InvalidateDate(ctx context.Context, barbershopID uint, date string) error
	InvalidateBarbershop(ctx context.Context, barbershopID uint) error
}

// Version junta a versão da barbearia (troca de expediente) e a do dia (reservas).
type Version struct {
	Barbershop int64
	Date       int64
}

const (
	availabilityPrefix = "availability:"
	versionPrefix      = "availability-ver:"

	// bem maior que qualquer requisição; expirar só zera o contador
	versionTTL = 24 * time.Hour
)

func shopVersionKey(barbershopID uint) string {
	return fmt.Sprintf("%s%d", versionPrefix, barbershopID)
}

func dateVersionKey(barbershopID uint, date string) string {
	return fmt.Sprintf("%s%d:%s", versionPrefix, barbershopID, date)
}

func parseVersion(v interface{}) int64 {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func availabilityKey(barbershopID uint, date string) string {
	return fmt.Sprintf("%s%d:%s", availabilityPrefix, barbershopID, date)
}

func barbershopPattern(barbershopID uint) string {
	return fmt.Sprintf("%s%d:*", availabilityPrefix, barbershopID)
}

type RedisAvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAvailabilityCache(client *redis.Client, ttl time.Duration) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{client: client, ttl: ttl}
}

func (c *RedisAvailabilityCache) Get(ctx context.Context, barbershopID uint, date string) ([]string, bool, error) {
	val, err := c.client.Get(ctx, availabilityKey(barbershopID, date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var slots []string
	if err := json.Unmarshal(val, &slots); err != nil {
		// entrada corrompida conta como miss
		return nil, false, nil
	}
	return slots, true, nil
}

func (c *RedisAvailabilityCache) Set(ctx context.Context, barbershopID uint, date string, slots []string) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availabilityKey(barbershopID, date), data, c.ttl).Err()
}

type mgetter interface {
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

func versionOf(ctx context.Context, cmd mgetter, barbershopID uint, date string) (Version, error) {
	vals, err := cmd.MGet(ctx, shopVersionKey(barbershopID), dateVersionKey(barbershopID, date)).Result()
	if err != nil {
		return Version{}, err
	}
	return Version{Barbershop: parseVersion(vals[0]), Date: parseVersion(vals[1])}, nil
}

func (c *RedisAvailabilityCache) Version(ctx context.Context, barbershopID uint, date string) (Version, error) {
	return versionOf(ctx, c.client, barbershopID, date)
}

// SetIfVersion grava só se nenhuma invalidação aconteceu desde v (WATCH/MULTI).
func (c *RedisAvailabilityCache) SetIfVersion(
	ctx context.Context,
	barbershopID uint,
	date string,
	v Version,
	slots []string,
) (bool, error) {

	data, err := json.Marshal(slots)
	if err != nil {
		return false, err
	}

	stored := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := versionOf(ctx, tx, barbershopID, date)
		if err != nil {
			return err
		}
		if current != v {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, availabilityKey(barbershopID, date), data, c.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}, shopVersionKey(barbershopID), dateVersionKey(barbershopID, date))

	// versão mudou entre o WATCH e o EXEC
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	return stored, err
}

func (c *RedisAvailabilityCache) InvalidateDate(ctx context.Context, barbershopID uint, date string) error {
	verKey := dateVersionKey(barbershopID, date)

	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, verKey)
	pipe.Expire(ctx, verKey, versionTTL)
	pipe.Del(ctx, availabilityKey(barbershopID, date))
	_, err := pipe.Exec(ctx)
	return err
}

// InvalidateBarbershop sobe a versão da barbearia e apaga só as chaves dela (SCAN, sem KEYS).
func (c *RedisAvailabilityCache) InvalidateBarbershop(ctx context.Context, barbershopID uint) error {
	verKey := shopVersionKey(barbershopID)

	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, verKey)
	pipe.Expire(ctx, verKey, versionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	iter := c.client.Scan(ctx, 0, barbershopPattern(barbershopID), 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

var _ AvailabilityCache = (*RedisAvailabilityCache)(nil)

// NopAvailabilityCache é usado quando o Redis não está configurado.
type NopAvailabilityCache struct{}

func (NopAvailabilityCache) Get(context.Context, uint, string) ([]string, bool, error) {
	return nil, false, nil
}
func (NopAvailabilityCache) Set(context.Context, uint, string, []string) error { return nil }
func (NopAvailabilityCache) Version(context.Context, uint, string) (Version, error) {
	return Version{}, nil
}
func (NopAvailabilityCache) SetIfVersion(context.Context, uint, string, Version, []string) (bool, error) {
	return false, nil
}
func (NopAvailabilityCache) InvalidateDate(context.Context, uint, string) error { return nil }
func (NopAvailabilityCache) InvalidateBarbershop(context.Context, uint) error { return nil }

var _ AvailabilityCache = NopAvailabilityCache{}
