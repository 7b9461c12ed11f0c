package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "mingle_onboarding/internal/adapters/redis"
	"mingle_onboarding/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var out []domain.Agency
	ok, err := c.Get(ctx, "agencies:all", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected miss on empty cache")
	}

	in := []domain.Agency{{ID: "a1", Name: "Star Agency"}, {ID: "a2", Name: "Moonlight"}}
	if err := c.Set(ctx, "agencies:all", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	ok, err = c.Get(ctx, "agencies:all", &out)
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if len(out) != 2 || out[0].ID != "a1" || out[1].Name != "Moonlight" {
		t.Fatalf("unexpected value: %+v", out)
	}

	if mr.TTL("agencies:all") <= 0 {
		t.Fatalf("expected a TTL on the key")
	}

	if err := c.Del(ctx, "agencies:all"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "agencies:all", &out); ok {
		t.Fatalf("expected miss after delete")
	}
}
