package ws

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radieske/football-predictions-view/pkg/contracts/events"
)

// StartRedisSubscriber escuta o canal de snapshots e repassa cada carga para o hub,
// assim páginas abertas em qualquer instância recarregam quando uma delas termina
func StartRedisSubscriber(ctx context.Context, r *redis.Client, channel string, hub *Hub, log *zap.Logger) {
	sub := r.Subscribe(ctx, channel)
	go func() {
		defer sub.Close()
		Relay(ctx, sub.Channel(), hub, log)
	}()
}

// Relay converte mensagens do pub/sub em avisos de recarga até o contexto encerrar
func Relay(ctx context.Context, ch <-chan *redis.Message, hub *Hub, log *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg == nil {
				continue
			}
			var ev events.SnapshotLoaded
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Warn("ws subscriber unmarshal error", zap.Error(err))
				continue
			}
			hub.Broadcast(Message{Type: TypeLoaded, LoadID: ev.LoadID})
		}
	}
}
