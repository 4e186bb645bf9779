package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
	"github.com/MKhiriev/go-pass-sync/models"
)

// AdminSubject is the "sub" claim of every admin token.
const AdminSubject = "admin"

// Login lockout parameters.
const (
	MaxFailedLoginAttempts = 5
	LoginBlockDuration     = 5 * time.Minute
)

type adminService struct {
	passRepository store.PassRepository

	password      string
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	guard *loginGuard

	logger *logger.Logger
}

func NewAdminService(passRepository store.PassRepository, cfg config.App, logger *logger.Logger) AdminService {
	return &adminService{
		passRepository: passRepository,
		password:       cfg.AdminPassword,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		guard:          newLoginGuard(MaxFailedLoginAttempts, LoginBlockDuration),
		logger:         logger,
	}
}

// Login checks the admin password and issues a bearer token.
//
// Returns:
//   - ErrTooManyLoginAttempts while ip is blocked, and on the failure that
//     blocks it.
//   - ErrWrongAdminPassword with the number of attempts left otherwise.
func (a *adminService) Login(ctx context.Context, ip, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if until, blocked := a.guard.blocked(ip); blocked {
		return models.Token{}, fmt.Errorf("%w: retry after %s", ErrTooManyLoginAttempts, until.UTC().Format(time.RFC3339))
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) != 1 {
		left := a.guard.fail(ip)
		log.Warn().Str("ip", ip).Int("attempts_left", left).Msg("admin login failed")
		if left <= 0 {
			return models.Token{}, fmt.Errorf("%w: blocked for %s", ErrTooManyLoginAttempts, a.guard.block)
		}
		return models.Token{}, fmt.Errorf("%w: %d attempts left", ErrWrongAdminPassword, left)
	}

	a.guard.clear(ip)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, AdminSubject, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("ip", ip).Msg("admin logged in")
	return token, nil
}

// ParseToken normalises every validation failure to ErrTokenIsExpiredOrInvalid.
func (a *adminService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if sub, err := token.GetAdminSubject(); err != nil || sub != AdminSubject {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *adminService) ListPasses(ctx context.Context) ([]models.PassSummary, error) {
	return a.passRepository.ListPassSummaries(ctx)
}

func (a *adminService) DeletePass(ctx context.Context, pass models.Pass) (int64, error) {
	deleted, err := a.passRepository.DeletePass(ctx, pass)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().Str("pass", pass.Masked()).Int64("deleted_entries", deleted).Msg("pass deleted by admin")
	return deleted, nil
}

type loginAttempts struct {
	count        int
	blockedUntil time.Time
}

// loginGuard counts failed logins per IP in memory.
type loginGuard struct {
	mu       sync.Mutex
	attempts map[string]*loginAttempts

	limit int
	block time.Duration
	now   func() time.Time
}

func newLoginGuard(limit int, block time.Duration) *loginGuard {
	return &loginGuard{
		attempts: make(map[string]*loginAttempts),
		limit:    limit,
		block:    block,
		now:      time.Now,
	}
}

func (g *loginGuard) blocked(ip string) (time.Time, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	a, ok := g.attempts[ip]
	if !ok || a.blockedUntil.IsZero() {
		return time.Time{}, false
	}
	if g.now().Before(a.blockedUntil) {
		return a.blockedUntil, true
	}

	// block expired, start over
	delete(g.attempts, ip)
	return time.Time{}, false
}

// fail records a failure and returns the attempts left before a block.
func (g *loginGuard) fail(ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	a, ok := g.attempts[ip]
	if !ok {
		a = &loginAttempts{}
		g.attempts[ip] = a
	}
	a.count++
	if a.count >= g.limit {
		a.blockedUntil = g.now().Add(g.block)
	}
	return max(g.limit-a.count, 0)
}

func (g *loginGuard) clear(ip string) {
	g.mu.Lock()
	delete(g.attempts, ip)
	g.mu.Unlock()
}
