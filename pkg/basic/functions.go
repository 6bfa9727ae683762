// file: pkg/basic/functions.go

package basic

// Functions maps the second byte of a 0xFF-prefixed two-byte token to its
// function name, spanning Color/Extended BASIC (0x80..0xA7) and the CoCo 3
// Super Extended additions (0xA8..0xAC).
var Functions = map[byte]string{
	0x80: "SGN", 0x81: "INT", 0x82: "ABS", 0x83: "USR", 0x84: "RND",
	0x85: "SIN", 0x86: "PEEK", 0x87: "LEN", 0x88: "STR$", 0x89: "VAL",
	0x8A: "ASC", 0x8B: "CHR$", 0x8C: "EOF", 0x8D: "JOYSTK", 0x8E: "LEFT$",
	0x8F: "RIGHT$", 0x90: "MID$", 0x91: "POINT", 0x92: "INKEY$", 0x93: "MEM",
	0x94: "ATN", 0x95: "COS", 0x96: "TAN", 0x97: "EXP", 0x98: "FIX",
	0x99: "LOG", 0x9A: "POS", 0x9B: "SQR", 0x9C: "HEX$", 0x9D: "VARPTR",
	0x9E: "INSTR", 0x9F: "TIMER", 0xA0: "PPOINT", 0xA1: "STRING$",
	0xA2: "CVN", 0xA3: "FREE", 0xA4: "LOC", 0xA5: "LOF", 0xA6: "MKN$",
	0xA7: "AS",

	// CoCo 3 Super Extended BASIC functions.
	0xA8: "LPEEK", 0xA9: "BUTTON", 0xAA: "HPOINT", 0xAB: "ERNO", 0xAC: "ERLIN",
}
