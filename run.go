package main

import (
	"context"
	"fmt"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/harmony/internal/app"
	"github.com/llehouerou/harmony/internal/catalog"
	"github.com/llehouerou/harmony/internal/config"
	"github.com/llehouerou/harmony/internal/errmsg"
	"github.com/llehouerou/harmony/internal/icons"
	"github.com/llehouerou/harmony/internal/jamendo"
	"github.com/llehouerou/harmony/internal/logging"
	"github.com/llehouerou/harmony/internal/metrics"
	"github.com/llehouerou/harmony/internal/mpris"
	"github.com/llehouerou/harmony/internal/notify"
	"github.com/llehouerou/harmony/internal/playback"
	"github.com/llehouerou/harmony/internal/player"
	"github.com/llehouerou/harmony/internal/state"
	"github.com/llehouerou/harmony/internal/stderr"
)

// run wires the application together and blocks until the TUI exits.
func run(ctx context.Context, opts options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var extra []string
	if opts.configPath != "" {
		extra = append(extra, opts.configPath)
	}
	cfg, err := config.Load(extra...)
	if err != nil {
		return errmsg.Wrap(errmsg.OpInitialize, err)
	}
	icons.Init(cfg.Icons)

	log, closeLog, err := openLog(cfg, opts.logLevel)
	if err != nil {
		return errmsg.Wrap(errmsg.OpInitialize, err)
	}
	defer closeLog()

	// The audio backend may print to fd 2 while the TUI is drawing.
	if err := stderr.Start(); err != nil {
		log.WithError(err).Warn("stderr capture unavailable")
	} else {
		defer stderr.Stop()
		go stderr.Forward(ctx, log)
	}

	m := metrics.New()
	if cfg.HasMetrics() {
		go func() {
			if err := m.Serve(ctx, cfg.Metrics.Listen); err != nil {
				log.WithError(err).WithField("listen", cfg.Metrics.Listen).Warn("metrics endpoint stopped")
			}
		}()
	}

	jc := cfg.GetJamendoConfig()
	client := jamendo.New(jc.ClientID,
		jamendo.WithBaseURL(jc.BaseURL),
		jamendo.WithLimit(jc.Limit),
		jamendo.WithHTTPClient(&http.Client{Timeout: jc.Timeout()}),
	)
	cat := catalog.NewResilient(client, log, m)

	pc := cfg.GetPlaybackConfig()
	surface := player.New(player.WithTimeUpdateInterval(pc.TimeUpdateInterval()))
	ctrl := playback.New(surface,
		playback.WithLogger(log),
		playback.WithMetrics(m),
		playback.WithSkipUnplayable(pc.SkipUnplayable),
	)
	defer func() {
		if err := ctrl.Close(); err != nil {
			log.WithError(err).Warn("close playback")
		}
	}()
	ctrl.SetVolume(*pc.InitialVolume)

	var sessions app.SessionSaver
	stateMgr, err := state.Open(log)
	if err != nil {
		log.WithError(err).Warn("session persistence disabled")
	} else {
		sessions = stateMgr
		defer func() {
			if err := stateMgr.Close(); err != nil {
				log.WithError(err).Warn("close state")
			}
		}()
	}

	restored := false
	if stateMgr != nil && *pc.RestoreSession && !opts.noRestore {
		restored = restoreSession(stateMgr, ctrl, log)
	}
	queuePopular := 0
	if !restored {
		queuePopular = *pc.InitialTracks
	}

	startDesktopIntegration(ctx, ctrl, log)

	model := app.New(app.Deps{
		Context:       ctx,
		Player:        ctrl,
		Catalog:       cat,
		Sessions:      sessions,
		Buffered:      surface.Buffered,
		Log:           log,
		Limit:         jc.Limit,
		InitialSearch: opts.search,
		InitialGenre:  opts.genre,
		QueuePopular:  queuePopular,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}
	return nil
}

// openLog opens the file logger. flagLevel overrides the configured level.
func openLog(cfg *config.Config, flagLevel string) (logrus.FieldLogger, func(), error) {
	level := cfg.GetLogLevel()
	if flagLevel != "" {
		level = flagLevel
	}
	path := cfg.LogFile
	if path == "" {
		p, err := logging.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}

	logger, closer, err := logging.Open(level, path)
	if err != nil {
		return nil, nil, err
	}
	log := logging.Session(logger)
	log.WithField("log_file", path).Info("harmony starting")
	return log, func() { _ = closer.Close() }, nil
}

// restoreSession applies the saved session, reporting whether a non-empty
// queue was restored.
func restoreSession(store state.Interface, ctrl *playback.Controller, log logrus.FieldLogger) bool {
	sess, err := store.GetSession()
	if err != nil {
		log.WithError(err).Warn(errmsg.Format(errmsg.OpSessionRestore, err))
		return false
	}
	if sess == nil || len(sess.Tracks) == 0 {
		return false
	}
	ctrl.Restore(*sess)
	log.WithField("tracks", len(sess.Tracks)).Info("session restored")
	return true
}

// startDesktopIntegration exposes the controller over MPRIS and shows a
// notification on track changes. Both are optional.
func startDesktopIntegration(ctx context.Context, ctrl *playback.Controller, log logrus.FieldLogger) {
	adapter, err := mpris.New(ctrl)
	if err != nil {
		log.WithError(err).Info("mpris unavailable")
	} else {
		go func() {
			<-ctx.Done()
			_ = adapter.Close()
		}()
	}

	n, err := notify.New()
	if err != nil {
		log.WithError(err).Info("desktop notifications unavailable")
		return
	}
	go notify.Watch(ctx, n, ctrl, ctrl.Subscribe(), log)
}
