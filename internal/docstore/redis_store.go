package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// docstore:doc:{path} - JSON document body
	keyDocument = "docstore:doc:%s"

	// docstore:col:{collection} - set of document ids in a collection
	keyCollection = "docstore:col:%s"

	// pub/sub channel carrying the path of every changed document
	channelChanges = "docstore:changes"

	// optimistic transaction retries for read-modify-write updates
	maxTxRetries = 5
)

// implements Store on Redis; one SUBSCRIBE connection per store feeds all listeners
type RedisStore struct {
	client   *redis.Client
	pubsub   *redis.PubSub
	watchers *watchers
	cancel   context.CancelFunc
	done     chan struct{}
}

// connects to redis and starts the change listener
func NewRedisStoreFromURL(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisStore(client), nil
}

// wraps an existing client; the store owns it from here on
func NewRedisStore(client *redis.Client) *RedisStore {
	ctx, cancel := context.WithCancel(context.Background())

	s := &RedisStore{
		client:   client,
		pubsub:   client.Subscribe(ctx, channelChanges),
		watchers: newWatchers(),
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go s.listen(ctx)

	return s
}

func (s *RedisStore) Get(ctx context.Context, path string) (Document, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return nil, err
	}

	raw, err := s.client.Get(ctx, fmt.Sprintf(keyDocument, path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get document from redis: %w", err)
	}

	return decodeDocument(raw)
}

func (s *RedisStore) Set(ctx context.Context, path string, data Document) error {
	if err := ValidateDocumentPath(path); err != nil {
		return err
	}

	return s.update(ctx, path, func(doc Document, exists bool) (Document, error) {
		if !exists {
			doc = make(Document)
		}

		mergeInto(doc, data)
		return doc, nil
	})
}

func (s *RedisStore) DeleteFields(ctx context.Context, path string, fields ...string) error {
	if err := ValidateDocumentPath(path); err != nil {
		return err
	}

	return s.update(ctx, path, func(doc Document, exists bool) (Document, error) {
		if !exists {
			return nil, ErrNotFound
		}

		for _, f := range fields {
			deleteField(doc, f)
		}

		return doc, nil
	})
}

func (s *RedisStore) Delete(ctx context.Context, path string) error {
	if err := ValidateDocumentPath(path); err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, fmt.Sprintf(keyDocument, path))
	pipe.SRem(ctx, fmt.Sprintf(keyCollection, parentCollection(path)), documentID(path))
	pipe.Publish(ctx, channelChanges, path)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete document from redis: %w", err)
	}

	return nil
}

func (s *RedisStore) List(ctx context.Context, collection string) ([]Snapshot, error) {
	if err := ValidateCollectionPath(collection); err != nil {
		return nil, err
	}

	ids, err := s.client.SMembers(ctx, fmt.Sprintf(keyCollection, collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list collection from redis: %w", err)
	}

	sort.Strings(ids)

	out := make([]Snapshot, 0, len(ids))
	for _, id := range ids {
		path := collection + "/" + id

		doc, err := s.Get(ctx, path)
		if errors.Is(err, ErrNotFound) {
			continue // removed between SMEMBERS and GET
		}

		if err != nil {
			return nil, err
		}

		out = append(out, Snapshot{Path: path, Exists: true, Data: doc})
	}

	return out, nil
}

func (s *RedisStore) Subscribe(ctx context.Context, path string, fn Listener) (Subscription, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return nil, err
	}

	w, err := s.watchers.add(ctx, path, s.Get, fn)
	if err != nil {
		return nil, err
	}

	return w, nil
}

// stops the change listener and closes the redis connection
func (s *RedisStore) Close() error {
	s.watchers.closeAll()
	s.cancel()
	s.pubsub.Close() //nolint:errcheck,gosec // best-effort cleanup
	<-s.done

	return s.client.Close()
}

// read-modify-write under WATCH so concurrent merges are not lost
func (s *RedisStore) update(ctx context.Context, path string, mutate func(Document, bool) (Document, error)) error {
	docKey := fmt.Sprintf(keyDocument, path)
	colKey := fmt.Sprintf(keyCollection, parentCollection(path))

	txf := func(tx *redis.Tx) error {
		var doc Document
		exists := true

		raw, err := tx.Get(ctx, docKey).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			exists = false
		case err != nil:
			return err
		default:
			if doc, err = decodeDocument(raw); err != nil {
				return err
			}
		}

		doc, err = mutate(doc, exists)
		if err != nil {
			return err
		}

		encoded, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, docKey, encoded, 0)
			pipe.SAdd(ctx, colKey, documentID(path))
			pipe.Publish(ctx, channelChanges, path)
			return nil
		})

		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, txf, docKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("failed to update document in redis: %w", err)
		}

		return err
	}

	return fmt.Errorf("failed to update document in redis: too much contention on %s", path)
}

func (s *RedisStore) listen(ctx context.Context) {
	defer close(s.done)

	ch := s.pubsub.ChannelWithSubscriptions()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			s.dispatch(msg)
		}
	}
}

// routes one pub/sub event to the watchers
func (s *RedisStore) dispatch(msg any) {
	switch m := msg.(type) {
	case *redis.Message:
		s.watchers.notify(m.Payload)
	case *redis.Subscription:
		// go-redis resubscribes after a reconnect; changes published in
		// between were dropped
		if m.Kind == "subscribe" {
			s.watchers.notifyAll()
		}
	}
}

func decodeDocument(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	if doc == nil {
		doc = make(Document)
	}

	return doc, nil
}
