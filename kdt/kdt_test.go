package kdt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/avrorecord/kdt"
)

func TestEncodeDateUnpackRoundTrip(t *testing.T) {
	d, err := kdt.EncodeDate(2024, 2, 29)
	require.NoError(t, err)
	got := kdt.UnpackDate(d)
	require.Equal(t, kdt.Date{Year: 2024, Month: 2, Day: 29, YDay: 60, WDay: 5}, got)
}

func TestEncodeDateRejectsNonLeapFeb29(t *testing.T) {
	_, err := kdt.EncodeDate(2023, 2, 29)
	require.ErrorIs(t, err, kdt.ErrOutOfRange)
}

func TestEncodeDateRejectsYearOutOfRange(t *testing.T) {
	_, err := kdt.EncodeDate(999, 1, 1)
	require.ErrorIs(t, err, kdt.ErrOutOfRange)

	_, err = kdt.EncodeDate(2901, 1, 1)
	require.ErrorIs(t, err, kdt.ErrOutOfRange)
}

func TestEncodeTimeUnpackRoundTrip(t *testing.T) {
	tm := kdt.EncodeTime(23, 59, 59, 999)
	got := kdt.UnpackTime(tm)
	require.Equal(t, kdt.Time{Hour: 23, Minute: 59, Sec: 59, MSec: 999}, got)
}

func TestDatetimeEpochMSRoundTrip(t *testing.T) {
	dt, err := kdt.EncodeDateTime(2024, 2, 29, 12, 30, 45, 123)
	require.NoError(t, err)

	ms := kdt.DatetimeToEpochMS(dt)
	back := kdt.EpochMSToDatetime(ms)

	require.Equal(t, kdt.UnpackDateTime(dt).Year, kdt.UnpackDateTime(back).Year)
	require.Equal(t, kdt.UnpackDateTime(dt).Month, kdt.UnpackDateTime(back).Month)
	require.Equal(t, kdt.UnpackDateTime(dt).Day, kdt.UnpackDateTime(back).Day)
	require.Equal(t, kdt.UnpackDateTime(dt).Hour, kdt.UnpackDateTime(back).Hour)
	require.Equal(t, kdt.UnpackDateTime(dt).Minute, kdt.UnpackDateTime(back).Minute)
	require.Equal(t, kdt.UnpackDateTime(dt).Sec, kdt.UnpackDateTime(back).Sec)
	require.Equal(t, kdt.UnpackDateTime(dt).MSec, kdt.UnpackDateTime(back).MSec)
}

func TestZeroRawDatetimeIsDefaultSentinel(t *testing.T) {
	ms := kdt.DatetimeToEpochMS(0)
	want := kdt.DatetimeToEpochMS(kdt.DateTimeDefault)
	require.Equal(t, want, ms)
}

func TestEpochMSBoundsRoundTrip(t *testing.T) {
	dt := kdt.EpochMSToDatetime(kdt.MinEpochMS)
	require.Equal(t, kdt.MinEpochMS, kdt.DatetimeToEpochMS(dt))

	dt = kdt.EpochMSToDatetime(kdt.MaxEpochMS)
	require.Equal(t, kdt.MaxEpochMS, kdt.DatetimeToEpochMS(dt))
}
