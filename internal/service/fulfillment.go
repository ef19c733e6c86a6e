package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"rexagon/internal/domain"
	"rexagon/internal/logger"

	redis "github.com/redis/go-redis/v9"
)

// FulfillmentQueueKey is the Redis list the game-server bridge consumes.
const FulfillmentQueueKey = "fulfillment:commands"

// DeliveryInstruction is the deferred in-game delivery for a committed
// purchase. It is produced after the ledger transaction commits and
// consumed out-of-band by the game server bridge.
type DeliveryInstruction struct {
	PurchaseID string    `json:"purchase_id"`
	Username   string    `json:"kullanici_adi"`
	ItemName   string    `json:"urun_adi"`
	Command    string    `json:"command"`
	CreatedAt  time.Time `json:"created_at"`
}

// FulfillmentService queues delivery instructions on Redis. When Redis
// is not configured it degrades to logging the command, same fail-open
// posture as the rate limiter: a missing queue never blocks a sale.
type FulfillmentService struct {
	client *redis.Client
}

func NewFulfillmentService(addr, password string, db int) *FulfillmentService {
	if addr == "" {
		return &FulfillmentService{}
	}

	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("fulfillment queue unavailable, falling back to log delivery", "error", err)
		return &FulfillmentService{}
	}

	return &FulfillmentService{client: client}
}

// Client exposes the underlying Redis connection for health checks.
// Nil when running degraded.
func (s *FulfillmentService) Client() *redis.Client {
	return s.client
}

// Enqueue pushes the delivery instruction for a committed purchase and
// returns the game-server command.
func (s *FulfillmentService) Enqueue(ctx context.Context, p *domain.Purchase, username string) string {
	instr := DeliveryInstruction{
		PurchaseID: p.ID,
		Username:   username,
		ItemName:   p.ItemName,
		Command:    GiveCommand(username, p.ItemName),
		CreatedAt:  time.Now().UTC(),
	}

	if s.client == nil {
		logger.Info("delivery instruction (no queue)", "command", instr.Command, "purchase_id", p.ID)
		return instr.Command
	}

	payload, err := json.Marshal(instr)
	if err != nil {
		logger.Error("marshal delivery instruction", "error", err)
		return instr.Command
	}

	if err := s.client.LPush(ctx, FulfillmentQueueKey, payload).Err(); err != nil {
		// The purchase is already committed; delivery is retried from the
		// purchases table by the bridge, so log and move on.
		logger.Error("enqueue delivery instruction", "error", err, "purchase_id", p.ID)
	}

	return instr.Command
}

// GiveCommand renders the console give command for one unit of an item.
func GiveCommand(username, itemName string) string {
	return fmt.Sprintf("give %s %s 1", username, slugify(itemName))
}

// slugify turns an item name into a console-safe identifier.
func slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastUnderscore := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
