package xtc

// firstIdx is the first valid index into magicInts; entries before it are
// zero and never selected by a valid smallidx.
const firstIdx = 9

// magicInts is the 73-entry window-size table the xdrfile coder uses to
// pick the bit width of the small (delta-run) coordinates. It has no
// closed form and must be reproduced verbatim.
var magicInts = [73]uint32{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 8,
	10, 12, 16, 20, 25, 32, 40, 50, 64, 80,
	101, 128, 161, 203, 256, 322, 406, 512, 645, 812,
	1024, 1290, 1625, 2048, 2580, 3250, 4096, 5060, 6501, 8192,
	10321, 13003, 16384, 20642, 26007, 32768, 41285, 52015, 65536, 82570,
	104031, 131072, 165140, 208063, 262144, 330280, 416127, 524287, 660561, 832255,
	1048576, 1321122, 1664510, 2097152, 2642245, 3329021, 4194304, 5284491, 6658042, 8388607,
	10568983, 13316085, 16777216,
}
