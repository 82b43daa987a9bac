// Package state holds the page's ephemeral interaction state.
//
// # Overview
//
// Two independent pieces of state drive the view:
//
//   - Gallery: the case list loaded once when the page mounts
//   - Selection: the highlighted architecture level and the case shown in
//     the detail overlay
//
// Both are owned by the Bubble Tea model and mutated only from its Update
// method, so neither type carries a lock. A fresh program run starts from
// NewGallery and NewSelection; nothing here is ever written to disk.
//
// # Gallery Lifecycle
//
//	NewGallery()            Loading=true, Cases=[]
//	     │
//	     │ Resolve(records, nil)    Loading=false, Cases=records
//	     │ Resolve(nil, err)        Loading=false, Cases=[], Failed=true
//	     ▼
//	 resolved (terminal; later Resolve calls are ignored)
//
// The error branch is the fail-soft policy: a fetch failure degrades to an
// empty gallery and the rest of the page keeps working. Failed exists for
// logging and tests only.
//
// # Selection
//
// SelectLevel accepts 0..LevelCount-1 and is idempotent. OpenCase and
// DismissCase toggle the overlay. Click classifies pointer input while the
// overlay is open:
//
//	TargetBackdrop  → dismiss
//	TargetDismiss   → dismiss
//	TargetPanel     → consumed, overlay stays open
//
// The panel target is the stop-propagation contract: a click inside the
// detail panel is never treated as an outside click.
package state
