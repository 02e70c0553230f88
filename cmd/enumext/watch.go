package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watch regenerates whenever the manifest changes. Editors often replace the
// file (rename + create) instead of writing in place, so the watch is on the
// containing directory, filtered to the manifest path.
func (c *GenCmd) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	manifest, err := filepath.Abs(c.Manifest)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(manifest)); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "enumext: watching %s\n", c.Manifest)

	// Debounce timer; replace-style saves fire several events per edit.
	var timer *time.Timer
	regen := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "enumext: watch error:", err)
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if evPath, err := filepath.Abs(ev.Name); err != nil || evPath != manifest {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(100*time.Millisecond, func() {
				select {
				case regen <- struct{}{}:
				default:
				}
			})
		case <-regen:
			if err := c.generate(ctx); err != nil {
				fmt.Fprintln(os.Stderr, "enumext:", err)
				continue
			}
			fmt.Fprintln(os.Stderr, "enumext: regenerated")
		}
	}
}
