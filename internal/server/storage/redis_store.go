// Package storage 提供房间快照的 Redis 持久化。
// 快照用于运维排查和服务重启后的房间信息恢复，不保存完整牌局
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key 前缀
	roomKeyPrefix = "room:"

	// 房间数据过期时间
	roomExpiration = 2 * time.Hour
)

// RoomData 房间快照（用于 Redis 序列化）
type RoomData struct {
	Code          string       `json:"code"`
	Mode          string       `json:"mode"`
	Status        int          `json:"status"`
	Players       []PlayerData `json:"players"`
	CurrentPlayer string       `json:"current_player,omitempty"`
	Direction     int          `json:"direction"`
	PendingDraw   int          `json:"pending_draw,omitempty"`
	DarkSide      bool         `json:"dark_side,omitempty"`
	WinnerID      string       `json:"winner_id,omitempty"`
	CreatedAt     int64        `json:"created_at"`
}

// PlayerData 玩家快照
type PlayerData struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Seat       int    `json:"seat"`
	Ready      bool   `json:"ready"`
	IsHost     bool   `json:"is_host"`
	IsBot      bool   `json:"is_bot"`
	CardsCount int    `json:"cards_count"`
}

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveRoom 保存房间快照
func (rs *RedisStore) SaveRoom(ctx context.Context, roomCode string, data *RoomData) error {
	if data == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化房间数据失败: %w", err)
	}

	key := roomKeyPrefix + roomCode
	return rs.client.Set(ctx, key, jsonData, roomExpiration).Err()
}

// LoadRoom 加载房间快照，不存在时返回 (nil, nil)
func (rs *RedisStore) LoadRoom(ctx context.Context, code string) (*RoomData, error) {
	key := roomKeyPrefix + code
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var roomData RoomData
	if err := json.Unmarshal(data, &roomData); err != nil {
		return nil, fmt.Errorf("反序列化房间数据失败: %w", err)
	}

	return &roomData, nil
}

// DeleteRoom 删除房间快照
func (rs *RedisStore) DeleteRoom(ctx context.Context, code string) error {
	key := roomKeyPrefix + code
	return rs.client.Del(ctx, key).Err()
}

// GetAllRoomCodes 获取所有有快照的房间号
func (rs *RedisStore) GetAllRoomCodes(ctx context.Context) ([]string, error) {
	keys, err := rs.client.Keys(ctx, roomKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(keys))
	for i, key := range keys {
		codes[i] = key[len(roomKeyPrefix):]
	}
	return codes, nil
}

// SetRoomExpiration 设置房间快照过期时间
func (rs *RedisStore) SetRoomExpiration(ctx context.Context, code string, expiration time.Duration) error {
	key := roomKeyPrefix + code
	return rs.client.Expire(ctx, key, expiration).Err()
}
