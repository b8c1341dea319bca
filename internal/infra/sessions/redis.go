package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// NewRedisClient создает клиента Redis и проверяет соединение
func NewRedisClient(addr, username, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Username:     username,
		Password:     password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}

// Store хранилище админских сессий в Redis.
// Токены непрозрачные: выход из системы удаляет ключ,
// и сессия становится недействительной сразу на всех экземплярах.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает хранилище сессий с заданным временем жизни токена
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Create выпускает новый токен сессии для указанной учётной записи
func (s *Store) Create(ctx context.Context, email string) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, email, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return token, nil
}

// Get возвращает учётную запись по токену и продлевает сессию
func (s *Store) Get(ctx context.Context, token string) (string, error) {
	email, err := s.client.GetEx(ctx, keyPrefix+token, s.ttl).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return email, nil
}

// Delete отзывает токен сессии. Отзыв несуществующего токена не ошибка.
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
