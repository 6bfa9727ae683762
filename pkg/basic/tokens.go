// file: pkg/basic/tokens.go

package basic

// Keywords maps single-byte tokens (0x80..0xF8) to their Color/Extended/
// Disk Extended/Super Extended BASIC keyword or operator text. GO (0x81)
// is deliberately kept as a standalone entry: the two-byte GOTO/GOSUB
// forms are folded in detokenize.go rather than represented here.
var Keywords = map[byte]string{
	0x80: "FOR", 0x81: "GO", 0x82: "REM", 0x83: "'", 0x84: "ELSE", 0x85: "IF",
	0x86: "DATA", 0x87: "PRINT", 0x88: "ON", 0x89: "INPUT", 0x8A: "END",
	0x8B: "NEXT", 0x8C: "DIM", 0x8D: "READ", 0x8E: "RUN", 0x8F: "RESTORE",
	0x90: "RETURN", 0x91: "STOP", 0x92: "POKE", 0x93: "CONT", 0x94: "LIST",
	0x95: "CLEAR", 0x96: "NEW", 0x97: "CLOAD", 0x98: "CSAVE", 0x99: "OPEN",
	0x9A: "CLOSE", 0x9B: "LLIST", 0x9C: "SET", 0x9D: "RESET", 0x9E: "CLS",
	0x9F: "MOTOR", 0xA0: "SOUND", 0xA1: "AUDIO", 0xA2: "EXEC", 0xA3: "SKIPF",
	0xA4: "TAB(", 0xA5: "TO", 0xA6: "SUB", 0xA7: "THEN", 0xA8: "NOT",
	0xA9: "STEP", 0xAA: "OFF", 0xAB: "+", 0xAC: "-", 0xAD: "*", 0xAE: "/",
	0xAF: "^", 0xB0: "AND", 0xB1: "OR", 0xB2: ">", 0xB3: "=", 0xB4: "<",
	0xB5: "DEL", 0xB6: "EDIT", 0xB7: "TRON", 0xB8: "TROFF", 0xB9: "DEF",
	0xBA: "LET", 0xBB: "LINE", 0xBC: "PCLS", 0xBD: "PSET", 0xBE: "PRESET",
	0xBF: "SCREEN", 0xC0: "PCLEAR", 0xC1: "COLOR", 0xC2: "CIRCLE",
	0xC3: "PAINT", 0xC4: "GET", 0xC5: "PUT", 0xC6: "DRAW", 0xC7: "PCOPY",
	0xC8: "PMODE", 0xC9: "PLAY", 0xCA: "DLOAD", 0xCB: "RENUM", 0xCC: "FN",
	0xCD: "USING", 0xCE: "DIR", 0xCF: "DRIVE", 0xD0: "FIELD", 0xD1: "FILES",
	0xD2: "KILL", 0xD3: "LOAD", 0xD4: "LSET", 0xD5: "MERGE", 0xD6: "RENAME",
	0xD7: "RSET", 0xD8: "SAVE", 0xD9: "WRITE", 0xDA: "VERIFY", 0xDB: "UNLOAD",
	0xDC: "DSKINI", 0xDD: "BACKUP", 0xDE: "COPY", 0xDF: "DSKI$", 0xE0: "DSKO$",

	// Super Extended Color BASIC (CoCo 3) commands.
	0xE2: "WIDTH", 0xE3: "PALETTE", 0xE4: "HSCREEN", 0xE6: "HCLS",
	0xE7: "HCOLOR", 0xE8: "HPAINT", 0xE9: "HCIRCLE", 0xEA: "HLINE",
	0xEB: "HGET", 0xEC: "HPUT", 0xED: "HBUFF", 0xEE: "HPRINT", 0xEF: "ERR",
	0xF0: "BRK", 0xF3: "HSET", 0xF4: "HRESET", 0xF5: "HDRAW", 0xF6: "CMP",
	0xF7: "RGB", 0xF8: "ATTR",
}

// remarkKeywords are the keywords after which the rest of the line is
// copied verbatim as remark text rather than further tokenized.
var remarkKeywords = map[byte]bool{
	0x82: true, // REM
	0x83: true, // '
}
