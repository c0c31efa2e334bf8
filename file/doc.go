// Package file provides Handle, a scriptable facade over one file or
// subprocess pipe.
//
// A Handle layers three independent concerns over raw byte I/O:
//
//   - reversible text transforms (ROT13, UUencode, yEnc, Base64) applied by
//     Read, Readln, Write and Writeln, see package codec
//   - an INI section/key store where every mutation is a whole-document
//     read-modify-write transaction, see package ini
//   - whole-file digests computed on demand without moving the cursor, see
//     package digest
//
// # Lifecycle
//
// New creates a closed handle bound to a name. Open and Popen attach a
// stream; Close and Remove detach it. Borrow wraps a stream owned by the
// caller, which Close detaches from but never closes.
//
//	h := file.New("settings.ini", file.WithFS(billy.NewMemory()))
//	if _, err := h.Open("w+", false, 0); err != nil {
//	    return err
//	}
//	defer h.Close()
//	h.IniSetValue(nil, "port", value.Int(8080))
//
// # Sharing
//
// Every open takes a non-blocking whole-file lock when the provider's files
// implement core.Locker. A non-shareable open takes an exclusive lock and
// retries while it is contended (see WithOpenRetry); a shareable open takes
// a shared lock once. Shared holders coexist, an exclusive holder excludes
// everyone else, and the first open wins.
//
// # Failures
//
// Operations whose result has a failure value (false, "", Undefined, -1)
// report local I/O failures through that value and record the cause, which
// Err returns until ClearError. Malformed input is returned as an
// INVALID_INPUT error. A Handle is not safe for concurrent use; distinct
// handles are.
package file
