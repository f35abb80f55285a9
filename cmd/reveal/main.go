package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/reveal/audio"
	"github.com/lixenwraith/reveal/clock"
	"github.com/lixenwraith/reveal/config"
	"github.com/lixenwraith/reveal/constants"
	"github.com/lixenwraith/reveal/content"
	"github.com/lixenwraith/reveal/effect"
	"github.com/lixenwraith/reveal/engine"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

type options struct {
	configPath  string
	contentPath string
	audioPath   string
	mute        bool
	noAudio     bool
	debug       bool
	colorMode   string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "reveal",
		Short: "A birthday letter revealed one line at a time",
		Long: `reveal plays a short presentation in the terminal: a locked screen,
timed intro lines, a scrollable letter and a closing surprise.

Press Enter, Space or click to continue, m to mute, q or Esc to quit.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default: user config dir)")
	flags.StringVar(&opts.contentPath, "content", "", "TOML file overriding the letter text")

	root.Flags().StringVar(&opts.audioPath, "audio", "", "mp3 or wav file to loop instead of the built-in pad")
	root.Flags().BoolVar(&opts.mute, "mute", false, "start muted")
	root.Flags().BoolVar(&opts.noAudio, "no-audio", false, "do not open the audio device")
	root.Flags().BoolVar(&opts.debug, "debug", false, "write logs to the log directory")
	root.Flags().StringVar(&opts.colorMode, "color", "", "color mode: auto, truecolor, 256")

	root.AddCommand(newPrintCommand(opts), newSampleConfigCommand())
	return root
}

// loadSettings reads the config file and applies flags on top
func loadSettings(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, _, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.ContentFile = opts.contentPath
	}
	if flags.Changed("audio") {
		cfg.Audio.Path = opts.audioPath
	}
	if flags.Changed("mute") {
		cfg.Audio.Muted = opts.mute
	}
	if flags.Changed("no-audio") {
		cfg.Audio.Enabled = !opts.noAudio
	}
	if flags.Changed("debug") {
		cfg.Logging.Debug = opts.debug
	}
	if flags.Changed("color") {
		cfg.Display.ColorMode = opts.colorMode
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSession(cmd *cobra.Command, opts *options) (err error) {
	cfg, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	letter, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	logger, logFile, err := setupLogging(cfg.Logging.Debug, cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger = logger.With(zap.String("session", uuid.NewString()))
	defer func() { _ = logger.Sync() }()

	applyColorMode(cfg.Display.ColorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before the panic reaches the user
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("session crashed", zap.Any("panic", r), zap.Stack("stack"))
			panic(r)
		}
	}()

	if cfg.Display.Mouse {
		screen.EnableMouse()
	}
	screen.HideCursor()

	var player engine.Audio
	if cfg.Audio.Enabled {
		player = audio.NewChannel(cfg.AudioConfig(), nil, logger.Named("audio"))
	}

	clk := clock.NewLoopClock(constants.CallbackQueueSize)
	defer clk.Close()

	burst := effect.DefaultBurst()
	burst.Duration = cfg.ConfettiDuration()

	session := engine.NewSession(screen, engine.Options{
		Content:       letter,
		Timings:       cfg.IntroTimings(),
		Burst:         burst,
		FrameInterval: cfg.FrameInterval(),
		Audio:         player,
		Muted:         cfg.Audio.Muted,
		Clock:         clk,
		Logger:        logger,
	})

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		zap.String("content", cfg.ContentFile),
		zap.String("audio", cfg.Audio.Path),
		zap.Bool("audio_enabled", cfg.Audio.Enabled),
		zap.String("color", cfg.Display.ColorMode),
	)
	return session.Run(ctx)
}

// applyColorMode steers tcell's color detection through its environment variables
func applyColorMode(mode string) {
	switch mode {
	case config.Color256:
		_ = os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		_ = os.Unsetenv("TCELL_TRUECOLOR")
		_ = os.Setenv("COLORTERM", "truecolor")
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// contextOrBackground keeps commands runnable when executed without a context
func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(file)
}
