package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"go-piano/config"
	"go-piano/debug"
	"go-piano/keys"
	"go-piano/piano"
	"go-piano/theme"
	"go-piano/tone"
	"go-piano/tui"
	"go-piano/widgets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	title := flag.String("title", cfg.Title, "Title shown above the keyboard")
	keyCount := flag.Int("keys", cfg.KeyCount, "Key count hint (the full keyboard is always shown)")
	palette := flag.String("palette", cfg.Palette, "Builtin palette name or path to a .gpl file")
	sampleRate := flag.Int("sample-rate", cfg.Audio.SampleRate, "Audio sample rate in Hz")
	mute := flag.Bool("mute", cfg.Audio.Disabled, "Do not open the audio device")
	debugLog := flag.Bool("debug", cfg.Debug, "Write a debug log to "+debug.DefaultPath())
	saveConfig := flag.Bool("save-config", false, "Store the given flags as the new defaults")
	flag.Parse()

	cfg.Title = *title
	cfg.KeyCount = *keyCount
	cfg.Palette = *palette
	cfg.Audio.SampleRate = *sampleRate
	cfg.Audio.Disabled = *mute
	cfg.Debug = *debugLog

	if *saveConfig {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
	}

	if cfg.Debug {
		if err := debug.Enable(); err != nil {
			fmt.Fprintf(os.Stderr, "Error enabling debug log: %v\n", err)
		}
		defer debug.Disable()
	}

	pal, err := theme.Load(cfg.Palette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading palette: %v\n", err)
		os.Exit(1)
	}
	th := theme.New(pal)

	// The audio device is opened on the first key or click, not here.
	var factory tone.Factory
	if !cfg.Audio.Disabled {
		factory = tone.NewOtoOutput
	}
	emitter := tone.NewEmitter(factory, cfg.Audio.SampleRate)
	defer emitter.Close()

	catalog := keys.Default()
	sched := tui.NewLoopScheduler()
	router := piano.NewRouter(catalog, emitter, sched)

	m := tui.NewModel(router, widgets.NewKeyboard(catalog, th), th, emitter, tui.Options{
		Title:    cfg.Title,
		KeyCount: cfg.KeyCount,
		Muted:    cfg.Audio.Disabled,
	}, sched.Tasks())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	debug.Log("main", "starting %q with %d keys", cfg.Title, len(catalog))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
