package users_test

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/userhub-io/userhub/internal/platform/apperr"
	"github.com/userhub-io/userhub/internal/users"
	"github.com/userhub-io/userhub/pkg/listquery"
)

// fakeRepo is an in-memory Repository double that mirrors the store contract:
// unique usernames, ObjectID-shaped ids, (nil, nil) on absent documents.
type fakeRepo struct {
	mu    sync.Mutex
	docs  map[string]*users.User
	clock time.Time
	calls map[string]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		docs:  make(map[string]*users.User),
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		calls: make(map[string]int),
	}
}

func (f *fakeRepo) List(_ context.Context, q listquery.Params) ([]*users.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["list"]++

	all := make([]*users.User, 0, len(f.docs))
	for _, user := range f.docs {
		copied := *user
		all = append(all, &copied)
	}

	sort.Slice(all, func(i, j int) bool {
		if q.Ascending() {
			return all[i].JoinedAt.Before(all[j].JoinedAt)
		}
		return all[i].JoinedAt.After(all[j].JoinedAt)
	})

	if q.Offset >= len(all) {
		return []*users.User{}, nil
	}
	all = all[q.Offset:]

	// Limit zero means unbounded, matching the store driver.
	if q.Limit > 0 && q.Limit < len(all) {
		all = all[:q.Limit]
	}

	return all, nil
}

func (f *fakeRepo) Create(_ context.Context, username string) (*users.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["create"]++

	for _, existing := range f.docs {
		if existing.Username == username {
			return nil, apperr.Conflict("Resource already exists")
		}
	}

	f.clock = f.clock.Add(time.Second)
	user := &users.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		JoinedAt: f.clock,
	}
	f.docs[user.ID.Hex()] = user

	copied := *user
	return &copied, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*users.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["get"]++

	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperr.InvalidID("user")
	}

	user, ok := f.docs[id]
	if !ok {
		return nil, nil
	}

	copied := *user
	return &copied, nil
}

func (f *fakeRepo) UpdateByID(_ context.Context, id, username string) (*users.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["update"]++

	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperr.InvalidID("user")
	}

	user, ok := f.docs[id]
	if !ok {
		return nil, nil
	}

	for otherID, existing := range f.docs {
		if otherID != id && existing.Username == username {
			return nil, apperr.Conflict("Resource already exists")
		}
	}

	user.Username = username
	copied := *user
	return &copied, nil
}

func (f *fakeRepo) DeleteByID(_ context.Context, id string) (*users.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["delete"]++

	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperr.InvalidID("user")
	}

	user, ok := f.docs[id]
	if !ok {
		return nil, nil
	}

	delete(f.docs, id)
	return user, nil
}

// fakeCache is an in-memory UserCache double.
type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
	return nil
}

func (c *fakeCache) contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.data[key]
	return ok
}
