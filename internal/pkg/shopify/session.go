package shopify

import (
	"encoding/json"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/storage/redis"

	"github.com/ranjeetgautam/SubStack/app/models"
	"github.com/ranjeetgautam/SubStack/app/repository"
	"github.com/ranjeetgautam/SubStack/internal/pkg/cache"
	"github.com/ranjeetgautam/SubStack/internal/pkg/env"
)

const sessionCacheTTL = 5 * time.Minute

var ErrShopNotInstalled = errors.New("shop is not installed")

// SessionStore resolves offline Admin API sessions for installed shops.
// Shop rows are the source of truth; resolved sessions are kept in a redis
// write-through so the per-request middleware does not hit the database.
type SessionStore struct {
	shops   repository.ShopRepository
	storage *redis.Storage
}

// NewSessionStore builds a session store on top of the shop repository,
// reusing the cache server connection details for its redis storage.
func NewSessionStore(shops repository.ShopRepository) *SessionStore {
	// Get Redis client configuration from existing cache setup
	cacheClient := cache.GetClient()
	host := "localhost"
	port := 6379
	password := env.GetEnv("CACHE_PASSWORD", "")
	if cacheClient != nil {
		addr := cacheClient.Options().Addr
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		// Prefer password from the underlying client if present
		if p := cacheClient.Options().Password; p != "" {
			password = p
		}
	}

	// Create Redis storage for sessions using database 1 (cache uses DB 0)
	storage := redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1, // Separate database for sessions
		Reset:    false,
	})

	return &SessionStore{
		shops:   shops,
		storage: storage,
	}
}

func sessionKey(domain string) string {
	return "shopify:session:" + domain
}

// FindByShop returns the offline session for an installed shop, or
// ErrShopNotInstalled when the shop is unknown or has uninstalled the app.
func (s *SessionStore) FindByShop(domain string) (*Session, error) {
	if domain == "" {
		return nil, errors.New("shop domain is required")
	}

	if data, err := s.storage.Get(sessionKey(domain)); err == nil && len(data) > 0 {
		var session Session
		if err := json.Unmarshal(data, &session); err == nil && session.AccessToken != "" {
			return &session, nil
		}
	}

	shop, err := s.shops.GetByDomain(domain)
	if err != nil {
		return nil, ErrShopNotInstalled
	}
	if !shop.IsActive() {
		return nil, ErrShopNotInstalled
	}

	session := &Session{
		Shop:        shop.Domain,
		AccessToken: shop.AccessToken,
	}
	if data, err := json.Marshal(session); err == nil {
		// Best effort; the database remains the source of truth.
		_ = s.storage.Set(sessionKey(domain), data, sessionCacheTTL)
	}
	return session, nil
}

// Store persists an installed shop and primes the session cache.
func (s *SessionStore) Store(shop *models.Shop) error {
	if err := s.shops.Upsert(shop); err != nil {
		return err
	}
	session := &Session{Shop: shop.Domain, AccessToken: shop.AccessToken}
	if data, err := json.Marshal(session); err == nil {
		_ = s.storage.Set(sessionKey(shop.Domain), data, sessionCacheTTL)
	}
	return nil
}

// Invalidate drops the cached session and marks the shop uninstalled.
func (s *SessionStore) Invalidate(domain string) error {
	_ = s.storage.Delete(sessionKey(domain))
	return s.shops.MarkUninstalled(domain)
}
