// Package cli provides the interactive QuickServe command-line client.
//
// The App drives the four state stores from a read-eval-print loop. The
// commands on offer depend on who is signed in: guests can log in or sign
// up, service providers manage their profile, services and bookings,
// customers browse providers, book and review, and admins moderate users,
// providers and bookings.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL and (*App).commands for the dispatch table.
package cli
