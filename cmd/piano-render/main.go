package main

import (
	"flag"
	"fmt"
	"os"

	"go-piano/keys"
	"go-piano/tone"
)

func main() {
	note := flag.String("note", "C4", "Catalog note to render (C4..D#5)")
	key := flag.String("key", "", "Computer key binding to render instead of -note (e.g. a)")
	sampleRate := flag.Int("sample-rate", tone.DefaultSampleRate, "Render sample rate in Hz")
	output := flag.String("output", "tone.wav", "Output WAV file path")
	flag.Parse()

	k, err := resolve(keys.Default(), *note, *key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	samples, err := tone.Render(k.Frequency, *sampleRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", k.Note, err)
		os.Exit(1)
	}

	file, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := tone.WriteWAV(file, samples, *sampleRate); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing WAV file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s: %s %.2fHz, %d frames at %d Hz\n", *output, k.Note, k.Frequency, len(samples), *sampleRate)
}

// resolve picks the key by binding when one is given, otherwise by note.
func resolve(c keys.Catalog, note, key string) (keys.PianoKey, error) {
	if key != "" {
		r := []rune(key)
		if len(r) != 1 {
			return keys.PianoKey{}, fmt.Errorf("-key must be a single character: %q", key)
		}
		k, ok := c.ByTrigger(r[0])
		if !ok {
			return keys.PianoKey{}, fmt.Errorf("no note bound to %q", key)
		}
		return k, nil
	}
	k, ok := c.ByNote(note)
	if !ok {
		return keys.PianoKey{}, fmt.Errorf("unknown note %q", note)
	}
	return k, nil
}
