package console_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/polynizer/fretpath/console"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := console.New(&buf, console.WithColor(false))

	log.Info("loading %s", "chords")
	log.Success("loaded %d chords", 3)
	log.Warn("dropped %q", "h7")
	log.Error("boom")
	log.Say("1. %s", "Halsey")

	assert.Equal(t,
		"[info] loading chords\n"+
			"[ok] loaded 3 chords\n"+
			"[warn] dropped \"h7\"\n"+
			"[error] boom\n"+
			"1. Halsey\n",
		buf.String())
}

func TestLogger_Quiet(t *testing.T) {
	var buf bytes.Buffer
	log := console.New(&buf, console.WithColor(false), console.WithQuiet(true))

	log.Info("hidden")
	log.Success("hidden")
	log.Say("hidden")
	log.Warn("shown")
	log.Error("shown")

	assert.Equal(t, "[warn] shown\n[error] shown\n", buf.String())
}

func TestLogger_Color(t *testing.T) {
	var buf bytes.Buffer
	console.New(&buf, console.WithColor(true)).Error("red")

	want := color.New(color.FgRed, color.Bold)
	want.EnableColor()
	assert.Equal(t, want.Sprint("[error]")+" red\n", buf.String())
	assert.True(t, strings.HasPrefix(buf.String(), "\x1b[31;1m[error]"))
}

func TestLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	log := console.New(&buf, console.WithColor(false))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			log.Info("line %d", i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, bytes.Count(buf.Bytes(), []byte("\n")))
}
