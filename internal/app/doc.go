// Package app is the composition root for bureaucrat.
//
// Run loads the configuration, display preferences and page content, opens
// the file logger, builds the cases client and hands everything to the ui
// package. Two modes exist:
//
//   - Interactive: a full-screen Bubble Tea program with mouse support. It
//     runs until the user quits or the context is cancelled.
//   - Plain: the page is rendered once to a writer. Used for --plain and
//     whenever stdout is not a terminal.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid config file
//   - Unreadable or invalid content override
//   - Log file cannot be opened
//   - Malformed cases endpoint
//
// A failed or empty cases fetch is never fatal. The gallery renders its
// empty state and the failure is written to the log.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{Plain: true, Width: 100}); err != nil {
//		log.Fatal(err)
//	}
package app
