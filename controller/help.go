package controller

const help1 = "\n\nControl characters:\n" +
	"  BEL 0x07        spins the printwheel\n" +
	"  BS  0x08        non-destructive backspace\n" +
	"  TAB 0x09        horizontal tab\n" +
	"  LF  0x0A        paper up one line\n" +
	"  VT  0x0B        paper up one line\n" +
	"  CR  0x0D        returns carriage to left margin\n" +
	"  ESC 0x1B        see Diablo 630 commands below...\n" +
	"\nDiablo 630 commands emulated:\n" +
	"  <ESC><O>        selects bold printing\n" +
	"  <ESC><&>        cancels bold printing\n" +
	"  <ESC><E>        selects continuous underlining\n" +
	"  <ESC><R>        cancels underlining\n" +
	"  <ESC><X>        cancels both bold and underlining\n" +
	"  <ESC><U>        half line feed\n" +
	"  <ESC><D>        reverse half line feed\n" +
	"  <ESC><BS>       backspace 1/120 inch\n" +
	"  <ESC><LF>       reverse line feed\n" +
	"<Space> for more, <ESC> to exit..."

const help2 = "\n\nPrinter control not part of the Diablo 630 emulation:\n" +
	"  <ESC><u>        selects micro paper up\n" +
	"  <ESC><d>        selects micro paper down\n" +
	"  <ESC><b>        selects broken underlining\n" +
	"  <ESC><l><n>     auto linefeed on or off\n" +
	"  <ESC><p>        selects Pica pitch (10 cpi)\n" +
	"  <ESC><e>        selects Elite pitch (12 cpi)\n" +
	"  <ESC><m>        selects Micro Elite pitch (15 cpi)\n" +
	"\nDiagnostics/debugging:\n" +
	"  <ESC><^Z><a>    show version information\n" +
	"  <ESC><^Z><e><n> flashing red LED on or off\n" +
	"  <ESC><^Z><p><n> show the value of Port n (0-3)\n" +
	"  <ESC><^Z><r>    reset the board\n" +
	"  <ESC><^Z><u>    show the uptime\n" +
	"  <ESC><^Z><v>    show variables\n"
