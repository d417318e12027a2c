package serve

import (
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/context"
	"k8s.io/klog/v2"

	"github.com/nelhage/connect4/pb"
)

// Cache stores analyses by key. Lookups that fail for any reason are
// treated as misses.
type Cache interface {
	Get(ctx context.Context, key string) (*pb.AnalyzeResponse, bool)
	Put(ctx context.Context, key string, resp *pb.AnalyzeResponse)
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (r *RedisCache) Get(ctx context.Context, key string) (*pb.AnalyzeResponse, bool) {
	bs, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		klog.Warningf("[cache] get %s: %v", key, err)
		return nil, false
	}
	var resp pb.AnalyzeResponse
	if err := proto.Unmarshal(bs, &resp); err != nil {
		klog.Warningf("[cache] decode %s: %v", key, err)
		return nil, false
	}
	return &resp, true
}

func (r *RedisCache) Put(ctx context.Context, key string, resp *pb.AnalyzeResponse) {
	bs, err := proto.Marshal(resp)
	if err != nil {
		klog.Warningf("[cache] encode %s: %v", key, err)
		return
	}
	if err := r.client.Set(ctx, key, bs, r.ttl).Err(); err != nil {
		klog.Warningf("[cache] set %s: %v", key, err)
	}
}
