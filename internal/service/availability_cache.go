package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-hotel-booking/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const availabilityKeyPrefix = "availability:"

// CachedConflict is the serialized form of a blocking reservation.
type CachedConflict struct {
	Reference    string `json:"reference"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

type cachedAvailability struct {
	Available bool             `json:"available"`
	Conflicts []CachedConflict `json:"conflicts,omitempty"`
}

// AvailabilityCache keeps read-path availability lookups off the database.
// Entries are short-lived and invalidated per room whenever a booking
// claims or releases a date range. The cache serves the browse surface
// only; booking creation always rechecks inside its transaction.
type AvailabilityCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewAvailabilityCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func availabilityKey(roomID uuid.UUID, checkIn, checkOut time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s",
		availabilityKeyPrefix, roomID,
		checkIn.Format(dateutil.DateFormat), checkOut.Format(dateutil.DateFormat))
}

// Get returns the cached lookup, or ok=false on miss or any Redis failure.
func (c *AvailabilityCache) Get(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (available bool, conflicts []CachedConflict, ok bool) {
	raw, err := c.redisClient.Get(ctx, availabilityKey(roomID, checkIn, checkOut)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Availability cache read failed for room %s: %+v", roomID, err)
		}
		return false, nil, false
	}

	var cached cachedAvailability
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		c.log.Warnf("Availability cache entry corrupt for room %s: %+v", roomID, err)
		return false, nil, false
	}
	return cached.Available, cached.Conflicts, true
}

func (c *AvailabilityCache) Set(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, available bool, conflicts []CachedConflict) {
	raw, err := json.Marshal(cachedAvailability{Available: available, Conflicts: conflicts})
	if err != nil {
		return
	}
	if err := c.redisClient.Set(ctx, availabilityKey(roomID, checkIn, checkOut), raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Availability cache write failed for room %s: %+v", roomID, err)
	}
}

// InvalidateRoom drops every cached range for the room. Called after any
// commit that claims or releases dates; a failure only means stale reads
// until the TTL expires, so it is logged and swallowed.
func (c *AvailabilityCache) InvalidateRoom(ctx context.Context, roomID uuid.UUID) {
	pattern := fmt.Sprintf("%s%s:*", availabilityKeyPrefix, roomID)
	iter := c.redisClient.Scan(ctx, 0, pattern, 0).Iterator()

	pipe := c.redisClient.Pipeline()
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Warnf("Availability cache scan failed for room %s: %+v", roomID, err)
		return
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Warnf("Availability cache invalidation failed for room %s: %+v", roomID, err)
	}
}
