package util

import (
	"errors"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/napalu/clitree/errs"
)

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ConvertString parses value into the variable data points to. Numbers are
// parsed locale-invariant in base 10.
func ConvertString(value string, data any) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return errs.ErrParseBool.WithArgs(value).Wrap(err)
		}
		*t = val
	case *int:
		val, err := parseInt(value, strconv.IntSize)
		if err != nil {
			return err
		}
		*t = int(val)
	case *int8:
		val, err := parseInt(value, 8)
		if err != nil {
			return err
		}
		*t = int8(val)
	case *int16:
		val, err := parseInt(value, 16)
		if err != nil {
			return err
		}
		*t = int16(val)
	case *int32:
		val, err := parseInt(value, 32)
		if err != nil {
			return err
		}
		*t = int32(val)
	case *int64:
		val, err := parseInt(value, 64)
		if err != nil {
			return err
		}
		*t = val
	case *uint:
		val, err := parseUint(value, strconv.IntSize)
		if err != nil {
			return err
		}
		*t = uint(val)
	case *uint8:
		val, err := parseUint(value, 8)
		if err != nil {
			return err
		}
		*t = uint8(val)
	case *uint16:
		val, err := parseUint(value, 16)
		if err != nil {
			return err
		}
		*t = uint16(val)
	case *uint32:
		val, err := parseUint(value, 32)
		if err != nil {
			return err
		}
		*t = uint32(val)
	case *uint64:
		val, err := parseUint(value, 64)
		if err != nil {
			return err
		}
		*t = val
	case *float32:
		val, err := parseFloat(value, 32)
		if err != nil {
			return err
		}
		*t = float32(val)
	case *float64:
		val, err := parseFloat(value, 64)
		if err != nil {
			return err
		}
		*t = val
	case *time.Duration:
		val, err := time.ParseDuration(value)
		if err != nil {
			return errs.ErrParseDuration.WithArgs(value).Wrap(err)
		}
		*t = val
	case *time.Time:
		val, err := ParseTime(value)
		if err != nil {
			return err
		}
		*t = val
	case *uuid.UUID:
		val, err := uuid.Parse(value)
		if err != nil {
			return errs.ErrParseUUID.WithArgs(value).Wrap(err)
		}
		*t = val
	default:
		return errs.ErrUnsupportedType.WithArgs(typeName(data))
	}

	return nil
}

// CanConvert reports whether ConvertString supports the variable data points to.
func CanConvert(data any) bool {
	switch data.(type) {
	case *string, *bool,
		*int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64,
		*float32, *float64,
		*time.Duration, *time.Time, *uuid.UUID:
		return true
	default:
		return false
	}
}

// ParseTime accepts ISO-8601 first and falls back to dateparse for anything
// else that looks like a date.
func ParseTime(value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if val, err := time.Parse(layout, value); err == nil {
			return val, nil
		}
	}

	val, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}, errs.ErrParseTime.WithArgs(value).Wrap(err)
	}

	return val, nil
}

func parseInt(value string, bits int) (int64, error) {
	val, err := strconv.ParseInt(value, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errs.ErrParseOverflow.WithArgs(value)
		}
		return 0, errs.ErrParseInt.WithArgs(value).Wrap(err)
	}

	return val, nil
}

func parseUint(value string, bits int) (uint64, error) {
	val, err := strconv.ParseUint(value, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errs.ErrParseOverflow.WithArgs(value)
		}
		return 0, errs.ErrParseUint.WithArgs(value).Wrap(err)
	}

	return val, nil
}

func parseFloat(value string, bits int) (float64, error) {
	val, err := strconv.ParseFloat(value, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errs.ErrParseOverflow.WithArgs(value)
		}
		return 0, errs.ErrParseFloat.WithArgs(value).Wrap(err)
	}

	return val, nil
}
