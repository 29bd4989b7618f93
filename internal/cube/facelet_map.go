package cube

// cornerFacelet maps each corner position to the three facelets that
// carry its stickers, in a fixed cyclic order.
var cornerFacelet = [8][3]Facelet{
	{8, 9, 20},    // URF: U9 R1 F3
	{6, 18, 38},   // UFL: U7 F1 L3
	{0, 36, 47},   // ULB: U1 L1 B3
	{2, 45, 11},   // UBR: U3 B1 R3
	{29, 26, 15},  // DFR: D3 F9 R7
	{27, 44, 24},  // DLF: D1 L9 F7
	{33, 53, 42},  // DBL: D7 B9 L7
	{35, 17, 51},  // DRB: D9 R9 B7
}

// edgeFacelet maps each edge position to the two facelets that carry
// its stickers.
var edgeFacelet = [12][2]Facelet{
	{5, 10},  // UR: U6 R2
	{7, 19},  // UF: U8 F2
	{3, 37},  // UL: U4 L2
	{1, 46},  // UB: U2 B2
	{32, 16}, // DR: D6 R8
	{28, 25}, // DF: D2 F8
	{30, 43}, // DL: D4 L8
	{34, 52}, // DB: D8 B8
	{23, 12}, // FR: F6 R4
	{21, 41}, // FL: F4 L6
	{50, 39}, // BL: B6 L4
	{48, 14}, // BR: B4 R6
}

// cornerColor gives the canonical sticker colors of each corner in
// the same cyclic order as cornerFacelet.
var cornerColor = [8][3]Color{
	{U, R, F},
	{U, F, L},
	{U, L, B},
	{U, B, R},
	{D, F, R},
	{D, L, F},
	{D, B, L},
	{D, R, B},
}

// edgeColor gives the canonical sticker colors of each edge in the
// same order as edgeFacelet.
var edgeColor = [12][2]Color{
	{U, R},
	{U, F},
	{U, L},
	{U, B},
	{D, R},
	{D, F},
	{D, L},
	{D, B},
	{F, R},
	{F, L},
	{B, L},
	{B, R},
}
