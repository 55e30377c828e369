package cli

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// spinner shows a rotating hint while a remote call is in flight. The ticker
// is torn down on Stop so nothing writes after the command finished.
type spinner struct {
	w      io.Writer
	hints  []string
	ticker *time.Ticker
	done   chan struct{}
	wg     sync.WaitGroup
}

var defaultHints = []string{
	"Talking to the store...",
	"Still fetching...",
	"Almost there...",
}

func startSpinner(w io.Writer, hints ...string) *spinner {
	if len(hints) == 0 {
		hints = defaultHints
	}
	s := &spinner{
		w:      w,
		hints:  hints,
		ticker: time.NewTicker(400 * time.Millisecond),
		done:   make(chan struct{}),
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		i := 0
		for {
			select {
			case <-s.done:
				fmt.Fprint(s.w, "\r\033[K")
				return
			case <-s.ticker.C:
				fmt.Fprintf(s.w, "\r%s", s.hints[i%len(s.hints)])
				i++
			}
		}
	}()
	return s
}

func (s *spinner) Stop() {
	s.ticker.Stop()
	close(s.done)
	s.wg.Wait()
}
