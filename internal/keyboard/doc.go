// Package keyboard models key chords and turns raw host key events into
// them.
//
// A chord is a set of logical modifiers plus exactly one terminal key.
// Platform spellings collapse onto the same logical modifier ("cmd",
// "ctrl", "meta" and "super" are all ModPrimary; "option" and "alt" are
// ModAlt) so a binding written on one platform resolves on another. The
// terminal key is case-insensitive: an upper-case letter in an event is
// read as shift plus the lower-case letter.
//
//	chord, err := keyboard.Parse("cmd+shift+P")
//	ev := keyboard.FromKeyMsg(msg, keyboard.TargetGlobal)
//	if c, ok := keyboard.Normalize(ev); ok && c == chord {
//	    // ...
//	}
package keyboard
