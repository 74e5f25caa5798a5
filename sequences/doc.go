/*
Control sequences are used to do things like move the cursor, change text color, clear the screen, and more. They are the primary way that programs interact with the terminal.

Programs running within terminals only have a single way to communicate with the terminal: writing bytes to the connected file descriptor (typically a pty). In order to differentiate between text to be displayed and commands to be executed, terminals use special syntax known collectively as control sequences.

The packages below produce those sequences; they never parse them. Each builder maps a named terminal operation plus optional integer parameters to the exact bytes a terminal interprets for that operation. The caller owns the returned string and decides when and where to write it.

There are eight types of control sequences. The families produced here are:

Escape Sequences: supported
CSI Sequences ("Control Sequence Introducer"): supported
OSC Sequences ("Operating System Command"): supported
DCS Sequences ("Device Control Sequence"): non-supported
SOS Sequences ("Start Of String"): non-supported
PM Sequences ("Privacy Message"): non-supported
APC Sequences ("Application Program Command"): non-supported

Each family has a different byte format; the per-family packages document the
exact layout of every operation they produce.
*/
package sequences
