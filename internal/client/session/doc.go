// Package session is the interactive core of passvault: a closed set of
// screen states and a Machine that moves a Session between them in response
// to normalized key events.
//
// The Machine owns every side effect a key press can cause (store reads and
// writes, encryption, clipboard, password generation) and nothing else; it
// has no rendering dependency. View turns the current state into a list of
// styled lines that the presentation layer draws as it likes.
//
//	s := session.NewSession(10)
//	m := session.NewMachine(entrySvc, authSvc, clipboard.Detect(), passgen.New(), logger)
//	if err := m.Handle(ctx, s, session.Key(session.EventEnter)); err != nil {
//		// *StoreError: the session cannot continue
//	}
//	v := m.View(s)
//
// Handle returns an error only for failures of the store itself; those are
// fatal. Authentication failures, password mismatches and corrupted secrets
// become timed notices on the Session instead.
package session
