package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/agenda-pro/internal/auth"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

const keyPrefix = "revoked"

// RedisRevoker marca credenciais revogadas no Redis. O middleware de
// autenticação consulta IsRevoked a cada requisição.
//
// A marca vive o mesmo tempo que um token: depois disso nenhum token
// anterior à revogação é aceito, e o login já barra profissional
// inativo. Reativar o profissional libera o acesso no próximo login
// após a expiração da marca.
type RedisRevoker struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewRedisRevoker usa auth.TokenTTL quando ttl <= 0.
func NewRedisRevoker(rdb redis.Cmdable, ttl time.Duration) *RedisRevoker {
	if ttl <= 0 {
		ttl = auth.TokenTTL
	}
	return &RedisRevoker{rdb: rdb, ttl: ttl}
}

func userKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", keyPrefix, userID)
}

func professionalKey(professionalID uint) string {
	return fmt.Sprintf("%s:professional:%d", keyPrefix, professionalID)
}

func keysFor(pro models.Professional) []string {
	keys := []string{professionalKey(pro.ID)}
	if pro.UserID != nil {
		keys = append(keys, userKey(*pro.UserID))
	}
	return keys
}

func (r *RedisRevoker) Revoke(ctx context.Context, pro models.Professional) error {
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, k := range keysFor(pro) {
			pipe.Set(ctx, k, pro.TenantID, r.ttl)
		}
		return nil
	})
	return err
}

func (r *RedisRevoker) Restore(ctx context.Context, pro models.Professional) error {
	return r.rdb.Del(ctx, keysFor(pro)...).Err()
}

// IsRevoked verifica usuário e, se houver, o profissional vinculado.
func (r *RedisRevoker) IsRevoked(ctx context.Context, userID, professionalID uint) (bool, error) {
	keys := make([]string, 0, 2)
	if userID != 0 {
		keys = append(keys, userKey(userID))
	}
	if professionalID != 0 {
		keys = append(keys, professionalKey(professionalID))
	}
	if len(keys) == 0 {
		return false, nil
	}

	n, err := r.rdb.Exists(ctx, keys...).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
