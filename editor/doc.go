/*
Package editor contains the GUI independent part of the plugin editor.

The Model owns the view of the gain parameter that the GUI shows. The GUI does
not write the parameter directly; it sends Events (SetGain, ResetGain,
NudgeGain) which the Model applies in Update. Views that show the value
subscribe to the Model and are called whenever the value changes, whether the
change came from the GUI or from the host (see Refresh).

The Broker carries messages between the host facing code, the MIDI input and
the GUI goroutine, and Lifecycle tracks whether the editor window is open.
*/
package editor
