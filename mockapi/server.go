// ABOUTME: In-memory stand-in for the account-dashboard backend built on gin
// ABOUTME: Serves the same routes, error bodies and status codes as the real API
package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Akshada2906/circle-insights/api"
)

// BasePath is the versioned prefix every route is mounted under.
const BasePath = "/api/v1"

// Server holds accounts and strategic profiles in memory.
type Server struct {
	mu          sync.Mutex
	accounts    []api.AccountRecord
	profiles    []api.StakeholderDetailRecord
	nextAccount int

	now    func() time.Time
	logger *log.Logger
	engine *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger logs every request to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithClock overrides the time source for server-assigned timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New creates an empty server.
func New(opts ...Option) *Server {
	s := &Server{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	v1 := router.Group(BasePath)

	accounts := v1.Group("/account-dashboard")
	accounts.GET("/", s.listAccounts)
	accounts.POST("/", s.createAccount)
	accounts.GET("/search/unit/:unit", s.searchByUnit)
	accounts.GET("/:id", s.getAccount)
	accounts.PUT("/:id", s.updateAccount)
	accounts.DELETE("/:id", s.deleteAccount)

	profiles := v1.Group("/stakeholder-details")
	profiles.GET("/", s.listProfiles)
	profiles.POST("/", s.createProfile)
	profiles.GET("/account/:accountId", s.profilesByAccount)
	profiles.GET("/:id", s.getProfile)
	profiles.PUT("/:id", s.updateProfile)
	profiles.DELETE("/:id", s.deleteProfile)

	s.engine = router
	return s
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Seed inserts accounts as-is, assigning ids to those without one.
func (s *Server) Seed(recs ...api.AccountRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range recs {
		if rec.AccountID == "" {
			rec.AccountID = s.assignID()
		}
		s.accounts = append(s.accounts, rec)
	}
}

// SeedProfiles inserts strategic profiles as-is.
func (s *Server) SeedProfiles(recs ...api.StakeholderDetailRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range recs {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		s.profiles = append(s.profiles, rec)
	}
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mock backend listening", "addr", addr, "base", BasePath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"request_id", c.GetHeader("X-Request-ID"),
			"duration", time.Since(start),
		)
	}
}

func (s *Server) listAccounts(c *gin.Context) {
	s.mu.Lock()
	out := slices.Clone(s.accounts)
	s.mu.Unlock()
	c.JSON(http.StatusOK, nonNil(out))
}

func (s *Server) getAccount(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.accountIndex(c.Param("id"))
	if i < 0 {
		detail(c, http.StatusNotFound, "Account not found")
		return
	}
	c.JSON(http.StatusOK, s.accounts[i])
}

func (s *Server) createAccount(c *gin.Context) {
	var in api.AccountCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if strings.TrimSpace(in.AccountName) == "" {
		detail(c, http.StatusUnprocessableEntity, "account_name is required")
		return
	}

	var rec api.AccountRecord
	if err := convert(in, &rec); err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.AccountID == "" {
		rec.AccountID = s.assignID()
	} else if s.accountIndex(rec.AccountID) >= 0 {
		detail(c, http.StatusBadRequest, "Account already exists")
		return
	}
	stamp := s.stamp()
	rec.CreatedAt = &stamp
	rec.UpdatedAt = &stamp
	s.accounts = append(s.accounts, rec)
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) updateAccount(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	delete(patch, "account_id")
	delete(patch, "created_at")

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.accountIndex(c.Param("id"))
	if i < 0 {
		detail(c, http.StatusNotFound, "Account not found")
		return
	}
	rec := s.accounts[i]
	if err := merge(&rec, patch); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	stamp := s.stamp()
	rec.UpdatedAt = &stamp
	s.accounts[i] = rec
	c.JSON(http.StatusOK, rec)
}

func (s *Server) deleteAccount(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.accountIndex(c.Param("id"))
	if i < 0 {
		detail(c, http.StatusNotFound, "Account not found")
		return
	}
	s.accounts = slices.Delete(s.accounts, i, i+1)
	c.Status(http.StatusNoContent)
}

func (s *Server) searchByUnit(c *gin.Context) {
	unit := c.Param("unit")
	s.mu.Lock()
	var out []api.AccountRecord
	for _, rec := range s.accounts {
		if rec.Unit != nil && strings.EqualFold(*rec.Unit, unit) {
			out = append(out, rec)
		}
	}
	s.mu.Unlock()
	c.JSON(http.StatusOK, nonNil(out))
}

func (s *Server) listProfiles(c *gin.Context) {
	s.mu.Lock()
	out := slices.Clone(s.profiles)
	s.mu.Unlock()
	c.JSON(http.StatusOK, nonNil(out))
}

func (s *Server) getProfile(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.profileIndex(c.Param("id"))
	if i < 0 {
		detail(c, http.StatusNotFound, "Stakeholder detail not found")
		return
	}
	c.JSON(http.StatusOK, s.profiles[i])
}

func (s *Server) profilesByAccount(c *gin.Context) {
	accountID := c.Param("accountId")
	s.mu.Lock()
	var out []api.StakeholderDetailRecord
	for _, rec := range s.profiles {
		if rec.AccountID == accountID {
			out = append(out, rec)
		}
	}
	s.mu.Unlock()
	c.JSON(http.StatusOK, nonNil(out))
}

func (s *Server) createProfile(c *gin.Context) {
	var in api.StakeholderDetailCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	var rec api.StakeholderDetailRecord
	if err := convert(in, &rec); err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accountIndex(rec.AccountID) < 0 {
		detail(c, http.StatusNotFound, "Account not found")
		return
	}
	rec.ID = uuid.NewString()
	stamp := s.stamp()
	rec.CreatedAt = &stamp
	rec.UpdatedAt = &stamp
	s.profiles = append(s.profiles, rec)
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) updateProfile(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	delete(patch, "id")
	delete(patch, "account_id")
	delete(patch, "created_at")

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.profileIndex(c.Param("id"))
	if i < 0 {
		detail(c, http.StatusNotFound, "Stakeholder detail not found")
		return
	}
	rec := s.profiles[i]
	if err := merge(&rec, patch); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	stamp := s.stamp()
	rec.UpdatedAt = &stamp
	s.profiles[i] = rec
	c.JSON(http.StatusOK, rec)
}

func (s *Server) deleteProfile(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.profileIndex(c.Param("id"))
	if i < 0 {
		detail(c, http.StatusNotFound, "Stakeholder detail not found")
		return
	}
	s.profiles = slices.Delete(s.profiles, i, i+1)
	c.Status(http.StatusNoContent)
}

// assignID must be called with mu held.
func (s *Server) assignID() string {
	s.nextAccount++
	return fmt.Sprintf("acc-%d", s.nextAccount)
}

func (s *Server) accountIndex(id string) int {
	return slices.IndexFunc(s.accounts, func(r api.AccountRecord) bool { return r.AccountID == id })
}

func (s *Server) profileIndex(id string) int {
	return slices.IndexFunc(s.profiles, func(r api.StakeholderDetailRecord) bool { return r.ID == id })
}

func (s *Server) stamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func detail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": msg})
}

func bindPatch(c *gin.Context) (map[string]any, bool) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return nil, false
	}
	for k, v := range patch {
		if v == nil {
			delete(patch, k)
		}
	}
	return patch, true
}

// merge overlays the set keys of patch onto rec through its JSON form.
func merge(rec any, patch map[string]any) error {
	var current map[string]any
	if err := convert(rec, &current); err != nil {
		return err
	}
	if current == nil {
		current = map[string]any{}
	}
	for k, v := range patch {
		current[k] = v
	}
	return convert(current, rec)
}

func convert(in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
