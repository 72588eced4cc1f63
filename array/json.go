package array

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/gogpu/nd"
	"github.com/gogpu/nd/vec"
)

// ErrInvalidRecord is returned when a JSON record does not describe a
// consistent array.
var ErrInvalidRecord = errors.New("array: invalid record")

// MarshalJSON encodes the array as
//
//	{"data":[...],"dims":[w,h,...],"strides":[1,w,...]}
//
// with data in axis-0-fastest order, encoded by encoding/json.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(a.data)
	if err != nil {
		return nil, fmt.Errorf("array: encode data: %w", err)
	}
	out, err := sjson.SetRawBytes([]byte(`{}`), "data", data)
	if err != nil {
		return nil, fmt.Errorf("array: encode data: %w", err)
	}
	if out, err = sjson.SetBytes(out, "dims", a.Extents().Components()); err != nil {
		return nil, fmt.Errorf("array: encode dims: %w", err)
	}
	if out, err = sjson.SetBytes(out, "strides", a.strides.Components()); err != nil {
		return nil, fmt.Errorf("array: encode strides: %w", err)
	}
	return out, nil
}

// UnmarshalJSON decodes a record written by MarshalJSON. The dims must be
// positive, the strides, when present, must match the dims, and data must
// hold one value per cell.
func (a *Array[T]) UnmarshalJSON(b []byte) error {
	if !gjson.ValidBytes(b) {
		return fmt.Errorf("%w: malformed JSON", ErrInvalidRecord)
	}
	rec := gjson.ParseBytes(b)

	dimsField := rec.Get("dims")
	if !dimsField.IsArray() {
		return fmt.Errorf("%w: missing dims", ErrInvalidRecord)
	}
	dims, err := intVector(dimsField)
	if err != nil {
		return err
	}
	shape, cells, err := shapeOf(dims)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	if stridesField := rec.Get("strides"); stridesField.Exists() {
		strides, err := intVector(stridesField)
		if err != nil {
			return err
		}
		if strides != shape.Strides() {
			return fmt.Errorf("%w: strides %v do not match dims %v", ErrInvalidRecord, strides, dims)
		}
	}

	dataField := rec.Get("data")
	if !dataField.Exists() {
		return fmt.Errorf("%w: missing data", ErrInvalidRecord)
	}
	var data []T
	if err := json.Unmarshal([]byte(dataField.Raw), &data); err != nil {
		return fmt.Errorf("%w: data: %w", ErrInvalidRecord, err)
	}
	if len(data) != cells {
		return fmt.Errorf("%w: %d values for %v", ErrInvalidRecord, len(data), shape)
	}

	nd.Logger().Debug("array: decoded record", "dims", shape.String())
	*a = Array[T]{data: data, shape: shape, strides: shape.Strides()}
	return nil
}

func intVector(field gjson.Result) (vec.Vec[int], error) {
	items := field.Array()
	if len(items) == 0 || len(items) > vec.MaxDims {
		return vec.Vec[int]{}, fmt.Errorf("%w: %s has %d axes", ErrInvalidRecord, field.Raw, len(items))
	}
	out := make([]int, len(items))
	for i, it := range items {
		if it.Type != gjson.Number || it.Float() != float64(it.Int()) {
			return vec.Vec[int]{}, fmt.Errorf("%w: %s is not an integer", ErrInvalidRecord, it.Raw)
		}
		out[i] = int(it.Int())
	}
	return vec.New(out...), nil
}
