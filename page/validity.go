package page

import (
	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/policy"
)

// presentFunc turns an optional validity slice into the present(i) closure
// stat.Collect* and the codecs expect; nil validity means "everything set".
func presentFunc(validity []bool) func(int) bool {
	if validity == nil {
		return nil
	}

	return func(i int) bool { return validity[i] }
}

// EncodeIntegerColumn frames a complete column: a leading presence flag, an
// optional validity sub-page (itself a boolean page, C9's "validity as an
// implicit boolean page"), and the values sub-page.
func EncodeIntegerColumn[T prim.Integer](values []T, validity []bool, opts policy.Options) ([]byte, error) {
	out := []byte{0}
	if validity != nil {
		out[0] = 1

		vp, err := EncodeBooleanValues(validity, nil, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, vp...)
	}

	vals, err := EncodeIntegerValues(values, presentFunc(validity), opts)
	if err != nil {
		return nil, err
	}

	return append(out, vals...), nil
}

// DecodeIntegerColumn reverses EncodeIntegerColumn.
func DecodeIntegerColumn[T prim.Integer](frame []byte, count int, opts policy.Options) (values []T, validity []bool, err error) {
	if len(frame) < 1 {
		return nil, nil, errs.ErrTruncated
	}

	hasValidity := frame[0] != 0
	frame = frame[1:]

	if hasValidity {
		v, consumed, err := DecodeBooleanValues(frame, count, opts)
		if err != nil {
			return nil, nil, err
		}
		validity = v
		frame = frame[consumed:]
	}

	values, _, err = DecodeIntegerValues[T](frame, count, opts)
	if err != nil {
		return nil, nil, err
	}

	return values, validity, nil
}

// EncodeBooleanColumn is EncodeIntegerColumn's boolean twin.
func EncodeBooleanColumn(values []bool, validity []bool, opts policy.Options) ([]byte, error) {
	out := []byte{0}
	if validity != nil {
		out[0] = 1

		vp, err := EncodeBooleanValues(validity, nil, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, vp...)
	}

	vals, err := EncodeBooleanValues(values, presentFunc(validity), opts)
	if err != nil {
		return nil, err
	}

	return append(out, vals...), nil
}

// DecodeBooleanColumn is DecodeIntegerColumn's boolean twin.
func DecodeBooleanColumn(frame []byte, count int, opts policy.Options) (values []bool, validity []bool, err error) {
	if len(frame) < 1 {
		return nil, nil, errs.ErrTruncated
	}

	hasValidity := frame[0] != 0
	frame = frame[1:]

	if hasValidity {
		v, consumed, err := DecodeBooleanValues(frame, count, opts)
		if err != nil {
			return nil, nil, err
		}
		validity = v
		frame = frame[consumed:]
	}

	values, _, err = DecodeBooleanValues(frame, count, opts)
	if err != nil {
		return nil, nil, err
	}

	return values, validity, nil
}

// EncodeFloatColumn is EncodeIntegerColumn's float twin.
func EncodeFloatColumn[T prim.Float](values []T, validity []bool, opts policy.Options) ([]byte, error) {
	out := []byte{0}
	if validity != nil {
		out[0] = 1

		vp, err := EncodeBooleanValues(validity, nil, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, vp...)
	}

	vals, err := EncodeFloatValues(values, presentFunc(validity), opts)
	if err != nil {
		return nil, err
	}

	return append(out, vals...), nil
}

// DecodeFloatColumn is DecodeIntegerColumn's float twin.
func DecodeFloatColumn[T prim.Float](frame []byte, count int, opts policy.Options) (values []T, validity []bool, err error) {
	if len(frame) < 1 {
		return nil, nil, errs.ErrTruncated
	}

	hasValidity := frame[0] != 0
	frame = frame[1:]

	if hasValidity {
		v, consumed, err := DecodeBooleanValues(frame, count, opts)
		if err != nil {
			return nil, nil, err
		}
		validity = v
		frame = frame[consumed:]
	}

	values, _, err = DecodeFloatValues[T](frame, count, opts)
	if err != nil {
		return nil, nil, err
	}

	return values, validity, nil
}
