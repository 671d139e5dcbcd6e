// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session provides [Session], the active profile of an
// application together with its gamut engine. Widgets go through a
// session to convert colors and to find gamut boundaries, so that
// replacing the profile takes effect everywhere at once.
package session

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"cogentcore.org/gamut/colorvalue"
	"cogentcore.org/gamut/gamut"
	"cogentcore.org/gamut/models"
	"cogentcore.org/gamut/profile"
	"github.com/fsnotify/fsnotify"
)

// ErrNoPath is returned when reloading or watching a profile that was
// not loaded from a file.
var ErrNoPath = errors.New("session: profile has no file")

type active struct {
	ctx    *profile.Context
	engine *gamut.Engine
}

// Session holds the active profile context and its gamut engine.
// It is safe for concurrent use; the profile is swapped atomically.
type Session struct {
	cur  atomic.Pointer[active]
	opts gamut.Options

	mu        sync.Mutex
	listeners []func(ctx *profile.Context)
}

// New returns a session with the given profile context, which is the
// built-in sRGB if ctx is nil. All engines of the session share one
// boundary cache.
func New(ctx *profile.Context, opts ...gamut.Options) *Session {
	o := gamut.DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Cache == nil {
		o.Cache = gamut.NewCache()
	}
	if ctx == nil {
		ctx = profile.SRGB()
	}
	s := &Session{opts: o}
	s.cur.Store(&active{ctx: ctx, engine: gamut.New(ctx, o)})
	return s
}

// Profile returns the active profile context.
func (s *Session) Profile() *profile.Context { return s.cur.Load().ctx }

// Engine returns the gamut engine of the active profile.
func (s *Session) Engine() *gamut.Engine { return s.cur.Load().engine }

// Cache returns the boundary cache shared by the engines of the session.
func (s *Session) Cache() *gamut.Cache { return s.opts.Cache }

// OnChange adds a function called with the new profile context
// whenever the profile is replaced.
func (s *Session) OnChange(fn func(ctx *profile.Context)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Replace makes ctx the active profile context and drops the cached
// boundaries of the previous one, which it returns. The previous
// engine is retired, so searches still running on it do not refill
// the cache.
func (s *Session) Replace(ctx *profile.Context) *profile.Context {
	old := s.cur.Swap(&active{ctx: ctx, engine: gamut.New(ctx, s.opts)})
	old.engine.Retire()
	if old.ctx != ctx {
		s.opts.Cache.Invalidate(old.ctx.ID())
	}
	slog.Info("replaced color profile", "old", old.ctx.String(), "new", ctx.String())
	s.mu.Lock()
	ls := append([]func(*profile.Context){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range ls {
		fn(ctx)
	}
	return old.ctx
}

// Reload loads the active profile again from its file and makes it
// active. On failure the active profile is kept.
func (s *Session) Reload() error {
	info := s.Profile().Info()
	if info.Path == "" {
		return ErrNoPath
	}
	ctx, err := profile.Load(info.Path, info.Intent)
	if err != nil {
		return err
	}
	s.Replace(ctx)
	return nil
}

// Watch starts reloading the active profile whenever its file is
// written or replaced, until the context is done. It returns once the
// watcher is installed. Reload failures are logged and keep the
// active profile.
func (s *Session) Watch(ctx context.Context) error {
	path := s.Profile().Info().Path
	if path == "" {
		return ErrNoPath
	}
	path = filepath.Clean(path)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// editors often replace files, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := s.Reload(); err != nil {
					slog.Error("reloading color profile", "path", path, "err", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("watching color profile", "path", path, "err", err)
			}
		}
	}()
	return nil
}

// MaxChroma returns the gamut boundary of the active profile.
// See [gamut.Engine.MaxChroma].
func (s *Session) MaxChroma(hue, lightness float64, m models.Model) gamut.Boundary {
	return s.Engine().MaxChroma(hue, lightness, m)
}

// Convert returns the projection of v into model m under the active
// profile. Values of another profile are first moved to the active
// one through the profile connection space.
func (s *Session) Convert(v *colorvalue.Value, m models.Model) (models.Values, bool) {
	ctx := s.Profile()
	if v.Profile() == ctx {
		return v.Get(m), true
	}
	var hint []float64
	if hi := m.HueIndex(); hi >= 0 {
		hint = []float64{v.Get(m)[hi]}
	}
	return ctx.Convert(models.XYZD50, v.Get(models.XYZD50), m, hint...)
}

// NewValue returns the value of v in model m under the active profile.
// See [colorvalue.FromModel].
func (s *Session) NewValue(m models.Model, v models.Values, opts ...colorvalue.Option) (*colorvalue.Value, error) {
	return colorvalue.FromModel(s.Engine(), m, v, opts...)
}

// NewRGB returns the value of device RGB of the active profile.
func (s *Session) NewRGB(rgb models.RGBValue, opts ...colorvalue.Option) *colorvalue.Value {
	return colorvalue.FromRGB(s.Profile(), rgb, opts...)
}

// NewHex returns the value of a hex color under the active profile.
func (s *Session) NewHex(hex string, opts ...colorvalue.Option) (*colorvalue.Value, error) {
	return colorvalue.FromHex(s.Profile(), hex, opts...)
}
