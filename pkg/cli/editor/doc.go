// Package editor resolves and launches the text editor used by fcf edit.
//
// Resolution precedence: override (--editor flag or FCF_EDITOR) > editor set
// in the fcf config > $EDITOR > $VISUAL. There is no implicit fallback; when
// nothing is configured [Resolver.Resolve] returns [ErrNoEditor].
//
// [Launcher] runs the editor in the foreground with inherited stdio and
// [WatchFile] reports whether the edited file was written meanwhile.
package editor
