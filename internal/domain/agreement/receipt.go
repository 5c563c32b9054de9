package agreement

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeReceiptID builds the compact human-shareable agreement identifier:
// the timestamp in uppercase base-36, a dash, then the store id zero-padded
// to 3 base-36 digits and the terminal id zero-padded to 2.
//
// EncodeReceiptID(1711154921145, 44027, 371) == "LU3DGJAX-XYZAB"
func EncodeReceiptID(timestampMillis int64, storeID, terminalID int) string {
	timestamp := toBase36(timestampMillis)
	store := padLeft(toBase36(int64(storeID)), 3)
	terminal := padLeft(toBase36(int64(terminalID)), 2)
	return fmt.Sprintf("%s-%s%s", timestamp, store, terminal)
}

func toBase36(v int64) string {
	return strings.ToUpper(strconv.FormatInt(v, 36))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
