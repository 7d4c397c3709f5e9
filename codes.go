package taiwanid

// idLength is the fixed length of an ID number: one region letter plus
// nine digits.
const idLength = 10

// codePairs maps each region letter (offset from 'A') to the two
// decimal digits of its numeric code: A=10, B=11, ..., Z=33. The codes
// are not alphabetically contiguous; I, O and W-Z were assigned later.
var codePairs = [26][2]int{
	{1, 0}, // A
	{1, 1}, // B
	{1, 2}, // C
	{1, 3}, // D
	{1, 4}, // E
	{1, 5}, // F
	{1, 6}, // G
	{1, 7}, // H
	{3, 4}, // I
	{1, 8}, // J
	{1, 9}, // K
	{2, 0}, // L
	{2, 1}, // M
	{2, 2}, // N
	{3, 5}, // O
	{2, 3}, // P
	{2, 4}, // Q
	{2, 5}, // R
	{2, 6}, // S
	{2, 7}, // T
	{2, 8}, // U
	{2, 9}, // V
	{3, 2}, // W
	{3, 0}, // X
	{3, 1}, // Y
	{3, 3}, // Z
}

// regionNames maps each letter to the administrative area it was
// originally issued for. Several areas no longer exist under these
// names (county mergers, Yangmingshan), but the letters remain valid.
var regionNames = [26]string{
	"Taipei City",      // A
	"Taichung City",    // B
	"Keelung City",     // C
	"Tainan City",      // D
	"Kaohsiung City",   // E
	"New Taipei City",  // F
	"Yilan County",     // G
	"Taoyuan City",     // H
	"Chiayi City",      // I
	"Hsinchu County",   // J
	"Miaoli County",    // K
	"Taichung County",  // L
	"Nantou County",    // M
	"Changhua County",  // N
	"Hsinchu City",     // O
	"Yunlin County",    // P
	"Chiayi County",    // Q
	"Tainan County",    // R
	"Kaohsiung County", // S
	"Pingtung County",  // T
	"Hualien County",   // U
	"Taitung County",   // V
	"Kinmen County",    // W
	"Penghu County",    // X
	"Yangmingshan",     // Y
	"Lienchiang County", // Z
}
