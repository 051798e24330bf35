// Package autosplit provides trigger watching and timer reconciliation for
// log-driven speedrun splitting.
//
// This package allows you to:
//   - Watch a game's log file for configured trigger substrings
//   - Turn matched lines into start/split/reset events
//   - Apply those events to a run timer while keeping the watcher's split
//     cursor consistent with manual undo/skip/reset commands
//   - Derive per-segment times and ahead/close/behind deltas for display
//
// # Basic Usage
//
// The poll-based watcher fits a single-threaded render loop:
//
//	w, err := autosplit.NewLogWatcher(logPath, triggers)
//	if err != nil {
//	    // proceed without auto-splitting; manual commands still work
//	}
//	defer w.Close()
//
//	rec := autosplit.NewReconciler(timer, w)
//	for {
//	    rec.ApplyAll(w.Poll())
//	    // poll input, render
//	}
//
// Hosts that prefer push delivery can use the channel-based API instead:
//
//	events, errs, err := autosplit.Watch(ctx, logPath, triggers)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for {
//	    select {
//	    case ev, ok := <-events:
//	        if !ok {
//	            return
//	        }
//	        rec.Apply(ev)
//	    case err, ok := <-errs:
//	        if !ok {
//	            return
//	        }
//	        log.Printf("error: %v", err)
//	    }
//	}
//
// # Trigger Matching
//
// Triggers are plain case-sensitive substrings, checked per complete line in
// fixed priority order: reset, then start, then the current split's trigger.
// The first match wins for a given line. Partial lines are held until their
// newline arrives, and a truncated or rotated log file is reopened from the
// beginning without losing trigger state.
package autosplit
