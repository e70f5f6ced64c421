package detect

import (
	"fmt"
	"strings"
)

// zoneOffsets maps timezone designators to their fixed UTC offset in
// minutes. Designators with daylight variants get separate entries; the
// detector does no calendar arithmetic, it shifts wall-clock times
// between fixed offsets.
var zoneOffsets = map[string]int{
	"utc":  0,
	"gmt":  0,
	"est":  -5 * 60,
	"edt":  -4 * 60,
	"cst":  -6 * 60,
	"cdt":  -5 * 60,
	"mst":  -7 * 60,
	"mdt":  -6 * 60,
	"pst":  -8 * 60,
	"pdt":  -7 * 60,
	"cet":  1 * 60,
	"cest": 2 * 60,
	"eet":  2 * 60,
	"eest": 3 * 60,
	"bst":  1 * 60,
	"ist":  5*60 + 30,
	"jst":  9 * 60,
	"kst":  9 * 60,
	"aest": 10 * 60,
	"aedt": 11 * 60,
	"nzst": 12 * 60,
	"nzdt": 13 * 60,
}

// clockTime is a wall-clock time in a designated zone, as captured by
// the timezone pattern.
type clockTime struct {
	hour     int
	minute   int
	meridiem string // "am", "pm" or "" for 24-hour times
	zone     string // lowercase designator
}

// valid reports whether the captured fields form a plausible clock time.
// 12-hour times run 1-12, 24-hour times 0-23.
func (c clockTime) valid() bool {
	if _, ok := zoneOffsets[c.zone]; !ok {
		return false
	}
	if c.minute < 0 || c.minute > 59 {
		return false
	}
	if c.meridiem != "" {
		return c.hour >= 1 && c.hour <= 12
	}
	return c.hour >= 0 && c.hour <= 23
}

// convertZone shifts the clock time into the target designator,
// wrapping across midnight. The rendering keeps the source's style:
// 12-hour with meridiem when one was present, 24-hour otherwise.
// Reports false for unknown designators.
func convertZone(c clockTime, targetZone string) (string, bool) {
	targetZone = strings.ToLower(targetZone)

	fromOff, ok := zoneOffsets[c.zone]
	if !ok {
		return "", false
	}
	toOff, ok := zoneOffsets[targetZone]
	if !ok {
		return "", false
	}

	hour24 := c.hour
	switch c.meridiem {
	case "pm":
		if hour24 < 12 {
			hour24 += 12
		}
	case "am":
		if hour24 == 12 {
			hour24 = 0
		}
	}

	total := hour24*60 + c.minute - fromOff + toOff
	total = ((total % 1440) + 1440) % 1440

	h, m := total/60, total%60
	designator := strings.ToUpper(targetZone)

	if c.meridiem == "" {
		return fmt.Sprintf("%d:%02d %s", h, m, designator), true
	}

	meridiem := "am"
	if h >= 12 {
		meridiem = "pm"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	if m == 0 {
		return fmt.Sprintf("%d %s %s", h12, meridiem, designator), true
	}
	return fmt.Sprintf("%d:%02d %s %s", h12, m, meridiem, designator), true
}
