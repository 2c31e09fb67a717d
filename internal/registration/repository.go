package registration

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	emailsSetKey = "registered_emails"
	phonesSetKey = "registered_phones"
)

func userKey(email string) string { return fmt.Sprintf("user:%s", email) }

func resultKey(email string, at time.Time) string {
	return fmt.Sprintf("quiz_result:%s:%d", email, at.UnixMilli())
}

type Repository interface {
	IsEmailRegistered(ctx context.Context, email string) (bool, error)
	IsPhoneRegistered(ctx context.Context, phone string) (bool, error)
	// GetUser devolve nil quando o registro não existe.
	GetUser(ctx context.Context, email string) (*User, error)
	// CreateUser grava o registro e as duas entradas de unicidade em um único
	// MULTI/EXEC; ou tudo aplica, ou nada.
	CreateUser(ctx context.Context, u *User) error
	// UpdateContact regrava apenas os campos de contato, preservando o contador.
	UpdateContact(ctx context.Context, u *User) error
	SaveResult(ctx context.Context, result *QuizResult) (string, error)
	IncrementAttempts(ctx context.Context, email string) (int64, error)
}

type redisRepository struct {
	rdb *redis.Client
}

func NewRepository(rdb *redis.Client) Repository {
	return &redisRepository{rdb: rdb}
}

func (r *redisRepository) IsEmailRegistered(ctx context.Context, email string) (bool, error) {
	return r.rdb.SIsMember(ctx, emailsSetKey, email).Result()
}

func (r *redisRepository) IsPhoneRegistered(ctx context.Context, phone string) (bool, error) {
	return r.rdb.SIsMember(ctx, phonesSetKey, phone).Result()
}

func (r *redisRepository) GetUser(ctx context.Context, email string) (*User, error) {
	fields, err := r.rdb.HGetAll(ctx, userKey(email)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	attempts, _ := strconv.Atoi(fields["quiz_attempts"])
	return &User{
		Name:         fields["name"],
		Email:        fields["email"],
		Phone:        fields["phone"],
		QuizAttempts: attempts,
	}, nil
}

func (r *redisRepository) CreateUser(ctx context.Context, u *User) error {
	pipe := r.rdb.TxPipeline()
	pipe.SAdd(ctx, emailsSetKey, u.Email)
	pipe.SAdd(ctx, phonesSetKey, u.Phone)
	pipe.HSet(ctx, userKey(u.Email), map[string]interface{}{
		"name":          u.Name,
		"email":         u.Email,
		"phone":         u.Phone,
		"quiz_attempts": u.QuizAttempts,
	})
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisRepository) UpdateContact(ctx context.Context, u *User) error {
	return r.rdb.HSet(ctx, userKey(u.Email), map[string]interface{}{
		"name":  u.Name,
		"email": u.Email,
		"phone": u.Phone,
	}).Err()
}

func (r *redisRepository) SaveResult(ctx context.Context, result *QuizResult) (string, error) {
	key := resultKey(result.Email, result.CompletedAt)
	err := r.rdb.HSet(ctx, key, map[string]interface{}{
		"submission_id": result.SubmissionID,
		"name":          result.Name,
		"email":         result.Email,
		"phone":         result.Phone,
		"score":         result.Score,
		"total":         result.Total,
		"answers":       result.Answers,
		"completed_at":  result.CompletedAt.UTC().Format(time.RFC3339),
	}).Err()
	if err != nil {
		return "", err
	}
	return key, nil
}

func (r *redisRepository) IncrementAttempts(ctx context.Context, email string) (int64, error) {
	return r.rdb.HIncrBy(ctx, userKey(email), "quiz_attempts", 1).Result()
}
