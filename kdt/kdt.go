// Package kdt packs and unpacks calendar date, time-of-day, and combined
// datetime values into the fixed bit layouts the record wire format uses,
// and converts between the packed datetime layout and epoch milliseconds.
//
// The calendar algorithm is the classic March-based Gregorian cycle: years
// are decomposed into 400-year, 100-year, and 4-year cycles so that leap
// days fall at the end of the internal year (February becomes the last
// "month" of the cycle), which keeps every cycle boundary a whole number of
// days without a table of variable month lengths for the leap check.
package kdt

import "errors"

// ErrOutOfRange is returned by Encode* functions when the supplied calendar
// fields cannot be represented: out-of-bounds year/month/day, or a day that
// does not exist in the given month (including the February 29 leap check).
var ErrOutOfRange = errors.New("kdt: value out of range")

const (
	// MinYear and MaxYear bound the representable calendar years.
	MinYear = 1000
	MaxYear = 2900

	// MinEpochMS and MaxEpochMS are the epoch-millisecond bounds
	// corresponding to [MinYear, MaxYear].
	MinEpochMS int64 = -30610224000000
	MaxEpochMS int64 = 29379542399999
)

const (
	baseEpochMS        int64 = -62162035200000 // March 1, year 0
	daysPerCycle             = 146097
	daysPerCentury           = 36524
	daysPerLeap              = 1461
	daysPerYear              = 365
	daysPerWeek              = 7
	msecPerDay         int64 = 86400000
	msecPerHour        int64 = 3600000
	msecPerMinute      int64 = 60000
	msecPerSec         int64 = 1000
)

// bit layout shifts, high to low.
const (
	dateBaseYear = 1900
	dateShiftYear  = 32 - 11
	dateShiftMonth = dateShiftYear - 4
	dateShiftDay   = dateShiftMonth - 5
	dateShiftYDay  = dateShiftDay - 9
	dateShiftWDay  = dateShiftYDay - 3

	timeShiftHour   = 31 - 5
	timeShiftMinute = timeShiftHour - 6
	timeShiftSec    = timeShiftMinute - 6
	timeShiftMSec   = timeShiftSec - 10

	dtBaseYear = 1900
	dtShiftYear   = 64 - 11
	dtShiftMonth  = dtShiftYear - 4
	dtShiftDay    = dtShiftMonth - 5
	dtShiftHour   = dtShiftDay - 5
	dtShiftMinute = dtShiftHour - 6
	dtShiftSec    = dtShiftMinute - 6
	dtShiftMSec   = dtShiftSec - 10
	dtShiftYDay   = dtShiftMSec - 9
	dtShiftWDay   = dtShiftYDay - 3
)

// DateDefault and DateTimeDefault are the sentinel packed values for
// 1/1/1000, used in place of a zero raw value on the read/encode path.
const (
	DateDefault     int32 = -1887301620
	DateTimeDefault int64 = -8105898787127426688
)

func mask32(bits, shift uint) int32 { return int32(((int64(1) << bits) - 1) << shift) }
func mask64(bits, shift uint) int64 { return ((int64(1) << bits) - 1) << shift }

// Date holds the decomposed fields of a packed 32-bit date value.
type Date struct {
	Year, Month, Day, YDay, WDay int
}

// UnpackDate decomposes a packed date value, treating a zero raw value as the
// 1/1/1000 sentinel.
func UnpackDate(d int32) Date {
	if d == 0 {
		d = DateDefault
	}
	return Date{
		Year:  int((d&mask32(11, dateShiftYear))>>dateShiftYear) + dateBaseYear,
		Month: int((d & mask32(4, dateShiftMonth)) >> dateShiftMonth),
		Day:   int((d & mask32(5, dateShiftDay)) >> dateShiftDay),
		YDay:  int((d & mask32(9, dateShiftYDay)) >> dateShiftYDay),
		WDay:  int((d & mask32(3, dateShiftWDay)) >> dateShiftWDay),
	}
}

// Time holds the decomposed fields of a packed 32-bit time-of-day value.
type Time struct {
	Hour, Minute, Sec, MSec int
}

// UnpackTime decomposes a packed time-of-day value.
func UnpackTime(t int32) Time {
	return Time{
		Hour:   int((t & mask32(5, timeShiftHour)) >> timeShiftHour),
		Minute: int((t & mask32(6, timeShiftMinute)) >> timeShiftMinute),
		Sec:    int((t & mask32(6, timeShiftSec)) >> timeShiftSec),
		MSec:   int((t & mask32(10, timeShiftMSec)) >> timeShiftMSec),
	}
}

// DateTime holds the decomposed fields of a packed 64-bit datetime value.
type DateTime struct {
	Year, Month, Day, Hour, Minute, Sec, MSec, YDay, WDay int
}

// UnpackDateTime decomposes a packed datetime value, treating a zero raw
// value as the 1/1/1000 midnight sentinel.
func UnpackDateTime(dt int64) DateTime {
	if dt == 0 {
		dt = DateTimeDefault
	}
	return DateTime{
		Year:   int((dt&mask64(11, dtShiftYear))>>dtShiftYear) + dtBaseYear,
		Month:  int((dt & mask64(4, dtShiftMonth)) >> dtShiftMonth),
		Day:    int((dt & mask64(5, dtShiftDay)) >> dtShiftDay),
		Hour:   int((dt & mask64(5, dtShiftHour)) >> dtShiftHour),
		Minute: int((dt & mask64(6, dtShiftMinute)) >> dtShiftMinute),
		Sec:    int((dt & mask64(6, dtShiftSec)) >> dtShiftSec),
		MSec:   int((dt & mask64(10, dtShiftMSec)) >> dtShiftMSec),
		YDay:   int((dt & mask64(9, dtShiftYDay)) >> dtShiftYDay),
		WDay:   int((dt & mask64(3, dtShiftWDay)) >> dtShiftWDay),
	}
}

var daysBeforeMonthMarch = [12]int64{0, 31, 61, 92, 122, 153, 184, 214, 245, 275, 306, 337}

// DatetimeToEpochMS converts a packed datetime value (as produced by
// EncodeDateTime or UnpackDateTime's input) into epoch milliseconds. The
// input must be a valid packed datetime.
func DatetimeToEpochMS(dt int64) int64 {
	if dt == 0 {
		dt = DateTimeDefault
	}
	d := UnpackDateTime(dt)
	year := int64(d.Year)
	month := int64(d.Month) - 3
	if month < 0 {
		month += 12
		year--
	}
	days := year*daysPerYear + year/4 - year/100 + year/400 + daysBeforeMonthMarch[month] + int64(d.Day) - 1
	return baseEpochMS + days*msecPerDay +
		int64(d.Hour)*msecPerHour + int64(d.Minute)*msecPerMinute + int64(d.Sec)*msecPerSec + int64(d.MSec)
}

var daysInMonthMarch = [12]int64{31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31, 29}

// EpochMSToDatetime converts epoch milliseconds into a packed datetime
// value. The input must be within [MinEpochMS, MaxEpochMS].
func EpochMSToDatetime(epochMS int64) int64 {
	baseMS := epochMS - baseEpochMS
	days := baseMS / msecPerDay
	milliseconds := baseMS % msecPerDay
	if milliseconds < 0 {
		milliseconds += msecPerDay
		days--
	}

	dayOfWeek := (days + 3) % daysPerWeek
	if dayOfWeek < 0 {
		dayOfWeek += daysPerWeek
	}

	cyclesSinceBase := floorDiv(days, daysPerCycle)
	days -= cyclesSinceBase * daysPerCycle
	centuriesSinceCycle := days / daysPerCentury
	if centuriesSinceCycle == 4 {
		centuriesSinceCycle--
	}
	days -= centuriesSinceCycle * daysPerCentury
	leapsSinceCentury := days / daysPerLeap
	days -= leapsSinceCentury * daysPerLeap
	yearsSinceLeap := days / daysPerYear
	if yearsSinceLeap == 4 {
		yearsSinceLeap--
	}
	days -= yearsSinceLeap * daysPerYear

	isLeapYear := int64(0)
	if yearsSinceLeap == 0 && (leapsSinceCentury != 0 || centuriesSinceCycle == 0) {
		isLeapYear = 1
	}
	dayOfYear := days + 59 + isLeapYear
	if dayOfYear >= daysPerYear+isLeapYear {
		dayOfYear -= daysPerYear + isLeapYear
	}

	year := cyclesSinceBase*400 + centuriesSinceCycle*100 + leapsSinceCentury*4 + yearsSinceLeap

	month := int64(0)
	for daysInMonthMarch[month] <= days {
		days -= daysInMonthMarch[month]
		month++
	}
	month += 3
	if month > 12 {
		month -= 12
		year++
	}

	return (int64(year-dtBaseYear) << dtShiftYear) +
		(month << dtShiftMonth) +
		((days + 1) << dtShiftDay) +
		((milliseconds / msecPerHour) << dtShiftHour) +
		((milliseconds / msecPerMinute % 60) << dtShiftMinute) +
		((milliseconds / msecPerSec % 60) << dtShiftSec) +
		((milliseconds % msecPerSec) << dtShiftMSec) +
		((dayOfYear + 1) << dtShiftYDay) +
		((dayOfWeek + 1) << dtShiftWDay)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

var daysInMonthStd = [12]int64{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
var daysBeforeMonthStd = [12]int64{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
var dayOfWeekOffset = [12]int64{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

func computeDays(year, month, day int) (dayOfYear, dayOfWeek int, ok bool) {
	if year < MinYear || year > MaxYear {
		return 0, 0, false
	}
	m := month - 1
	if m < 0 || m > 11 {
		return 0, 0, false
	}
	if int64(day) > daysInMonthStd[m] || day < 1 {
		return 0, 0, false
	}
	notLeapYear := year%4 != 0 || (year%100 == 0 && year%400 != 0)
	if notLeapYear && month == 2 && day == 29 {
		return 0, 0, false
	}

	var yday int64
	var y int64
	if month < 3 {
		yday = daysBeforeMonthStd[m] + int64(day)
		y = int64(year) - 1
	} else {
		nly := int64(0)
		if notLeapYear {
			nly = 1
		}
		yday = daysBeforeMonthStd[m] - nly + int64(day)
		y = int64(year)
	}
	wday := (int64(day)+dayOfWeekOffset[m]+y+y/4-y/100+y/400)%7 + 1
	return int(yday), int(wday), true
}

// EncodeDate packs a year/month/day into the 32-bit date layout. Returns
// ErrOutOfRange if year is outside [MinYear, MaxYear], month/day are out of
// bounds, or day does not exist in the given month (leap years included).
func EncodeDate(year, month, day int) (int32, error) {
	yday, wday, ok := computeDays(year, month, day)
	if !ok {
		return 0, ErrOutOfRange
	}
	return int32(year-dateBaseYear)<<dateShiftYear +
		int32(month)<<dateShiftMonth +
		int32(day)<<dateShiftDay +
		int32(yday)<<dateShiftYDay +
		int32(wday)<<dateShiftWDay, nil
}

// EncodeDateTime packs a full calendar date plus time-of-day into the
// 64-bit datetime layout. Returns ErrOutOfRange under the same conditions as
// EncodeDate; hour/minute/second/millisecond are not range-checked here
// (EncodeTime never fails, so callers should validate them there first if
// rejecting invalid clock fields is desired).
func EncodeDateTime(year, month, day, hour, minute, sec, msec int) (int64, error) {
	yday, wday, ok := computeDays(year, month, day)
	if !ok {
		return 0, ErrOutOfRange
	}
	return int64(year-dtBaseYear)<<dtShiftYear +
		int64(month)<<dtShiftMonth +
		int64(day)<<dtShiftDay +
		int64(hour)<<dtShiftHour +
		int64(minute)<<dtShiftMinute +
		int64(sec)<<dtShiftSec +
		int64(msec)<<dtShiftMSec +
		int64(yday)<<dtShiftYDay +
		int64(wday)<<dtShiftWDay, nil
}

// EncodeTime packs an hour/minute/second/millisecond time-of-day into the
// 32-bit time layout. Never fails.
func EncodeTime(hour, minute, sec, msec int) int32 {
	return int32(hour)<<timeShiftHour +
		int32(minute)<<timeShiftMinute +
		int32(sec)<<timeShiftSec +
		int32(msec)<<timeShiftMSec
}
