package preview

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lixenwraith/backdrop/config"
)

// Server serves rendered effect frames over HTTP
type Server struct {
	cfg    *config.Config
	log    *zap.Logger
	engine *gin.Engine
}

// NewServer builds the router
func NewServer(cfg *config.Config, log *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{cfg: cfg, log: log, engine: gin.New()}
	s.engine.Use(gin.Recovery(), requestLogger(log))

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/effects", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"effects": config.Effects})
	})
	s.engine.GET("/render/:file", s.handleRender)

	return s
}

// Handler exposes the router for embedding and tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Preview.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("preview server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("preview server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// handleRender serves GET /render/<effect>.png?frames=&seed=&width=&height=&x=&y=
func (s *Server) handleRender(c *gin.Context) {
	name, ok := strings.CutSuffix(c.Param("file"), ".png")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "expected <effect>.png"})
		return
	}

	req, err := s.parseRequest(c, name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	res, err := Render(s.cfg, req, &buf)
	switch {
	case errors.Is(err, ErrUnknownEffect):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, ErrBadSize):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		s.log.Error("render failed", zap.String("effect", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}

	c.Header("X-Frames", strconv.FormatUint(res.Frames, 10))
	c.Header("X-Spawned", strconv.Itoa(res.Spawned))
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) parseRequest(c *gin.Context, name string) (Request, error) {
	p := s.cfg.Preview
	req := Request{Effect: name, Width: p.Width, Height: p.Height, Frames: p.Frames}

	var err error
	if req.Frames, err = queryInt(c, "frames", req.Frames); err != nil {
		return req, err
	}
	if req.Frames > p.MaxFrames {
		req.Frames = p.MaxFrames
	}
	if req.Width, err = queryInt(c, "width", req.Width); err != nil {
		return req, err
	}
	if req.Height, err = queryInt(c, "height", req.Height); err != nil {
		return req, err
	}
	if raw := c.Query("seed"); raw != "" {
		if req.Seed, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return req, errors.New("seed: " + err.Error())
		}
	}

	xs, ys := c.Query("x"), c.Query("y")
	if xs != "" && ys != "" {
		x, errX := strconv.ParseFloat(xs, 64)
		y, errY := strconv.ParseFloat(ys, 64)
		if err := errors.Join(errX, errY); err != nil {
			return req, errors.New("click: " + err.Error())
		}
		req.Clicks = append(req.Clicks, [2]float64{x, y})
	}
	return req, nil
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(key + ": " + err.Error())
	}
	return n, nil
}

// requestLogger logs each request through zap in place of gin's default logger
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client", c.ClientIP()))
	}
}
