package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/coerce/pkg/ident"
	"github.com/aretw0/coerce/pkg/schema"
	backend "github.com/redis/go-redis/v9"
)

// ErrSchemaNotFound is returned when a schema id has no stored form.
var ErrSchemaNotFound = errors.New("schema not found")

// Store persists schema definitions in two Redis hashes: one mapping ids to
// form text and one mapping ids to their declared parent.
type Store struct {
	client *backend.Client
	prefix string
}

type Option func(*Store)

// WithPrefix sets the key prefix for the schema hashes.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromURL creates a new Redis store from a redis:// URL.
func NewFromURL(rawURL string, opts ...Option) (*Store, error) {
	options, err := backend.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewFromClient(backend.NewClient(options), opts...), nil
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "coerce:schema:",
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) formsKey() string {
	return s.prefix + "forms"
}

func (s *Store) parentsKey() string {
	return s.prefix + "parents"
}

// Save stores the form of id, replacing any previous one.
func (s *Store) Save(ctx context.Context, id ident.Keyword, form schema.Form) error {
	if id.IsEmpty() || form == nil {
		return fmt.Errorf("invalid schema definition for %q", id)
	}
	if err := s.client.HSet(ctx, s.formsKey(), id.String(), form.String()).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// SaveParent declares parent as the parent of id.
func (s *Store) SaveParent(ctx context.Context, id, parent ident.Keyword) error {
	if err := s.client.HSet(ctx, s.parentsKey(), id.String(), parent.String()).Err(); err != nil {
		return fmt.Errorf("failed to save parent to redis: %w", err)
	}
	return nil
}

// Get returns the stored form of id.
func (s *Store) Get(ctx context.Context, id ident.Keyword) (schema.Form, error) {
	val, err := s.client.HGet(ctx, s.formsKey(), id.String()).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, ErrSchemaNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	return schema.ParseForm(val)
}

// Delete removes the form and the declared parent of id.
func (s *Store) Delete(ctx context.Context, id ident.Keyword) error {
	pipe := s.client.Pipeline()

	pipe.HDel(ctx, s.formsKey(), id.String())
	pipe.HDel(ctx, s.parentsKey(), id.String())

	_, err := pipe.Exec(ctx)
	return err
}

// Sync writes every definition of reg in a single pipeline.
func (s *Store) Sync(ctx context.Context, reg *schema.Registry) error {
	pipe := s.client.Pipeline()

	for id, form := range reg.Schema() {
		pipe.HSet(ctx, s.formsKey(), id.String(), form.String())
	}
	for id, parent := range reg.Parents() {
		pipe.HSet(ctx, s.parentsKey(), id.String(), parent.String())
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to sync schemas to redis: %w", err)
	}
	return nil
}

// Load reads every stored definition into a snapshot registry.
// Entries that no longer parse are collected into a *schema.AggregateError.
func (s *Store) Load(ctx context.Context) (*schema.Registry, error) {
	pipe := s.client.Pipeline()
	formsCmd := pipe.HGetAll(ctx, s.formsKey())
	parentsCmd := pipe.HGetAll(ctx, s.parentsKey())
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to load schemas from redis: %w", err)
	}

	forms := formsCmd.Val()
	parsed, err := schema.ParseFormMap(forms)
	if err != nil {
		return nil, err
	}
	reg := schema.FromSchema(parsed)

	for key, value := range parentsCmd.Val() {
		id, err := ident.ParseKeyword(key)
		if err != nil {
			continue
		}
		parent, err := ident.ParseKeyword(value)
		if err != nil {
			continue
		}
		reg.DefineParent(id, parent)
	}

	return reg, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
