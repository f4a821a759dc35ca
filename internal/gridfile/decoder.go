package gridfile

import (
	"math"

	"github.com/matzehuels/subplots/pkg/errors"
	"github.com/matzehuels/subplots/pkg/grid"
)

// decoder reads typed values out of a raw mapping and keeps the first
// error.
type decoder struct {
	raw map[string]any
	err error
}

func (d *decoder) get(key string) (any, bool) {
	if d.err != nil {
		return nil, false
	}
	v, ok := d.raw[key]
	return v, ok && v != nil
}

func (d *decoder) fail(key, want string, v any) {
	d.err = errors.Config("the %q key must be %s, received %v (%T)", key, want, v, v)
}

func (d *decoder) intOr(key string, def int) int {
	v, ok := d.get(key)
	if !ok {
		return def
	}
	f, ok := grid.Number(v)
	if !ok || f != math.Trunc(f) {
		d.fail(key, "an integer", v)
		return 0
	}
	return int(f)
}

func (d *decoder) optFloat(key string) *float64 {
	v, ok := d.get(key)
	if !ok {
		return nil
	}
	f, ok := grid.Number(v)
	if !ok {
		d.fail(key, "a number", v)
		return nil
	}
	return grid.Spacing(f)
}

func (d *decoder) floatList(key string) []float64 {
	v, ok := d.get(key)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		d.fail(key, "a list of numbers", v)
		return nil
	}
	out := make([]float64, len(items))
	for i, item := range items {
		f, ok := grid.Number(item)
		if !ok {
			d.fail(key, "a list of numbers", v)
			return nil
		}
		out[i] = f
	}
	return out
}

func (d *decoder) str(key string) string {
	v, ok := d.get(key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.fail(key, "a string", v)
	}
	return s
}

func (d *decoder) strList(key string) []string {
	v, ok := d.get(key)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		d.fail(key, "a list of strings", v)
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		switch s := item.(type) {
		case string:
			out[i] = s
		case nil:
		default:
			d.fail(key, "a list of strings", v)
			return nil
		}
	}
	return out
}

func (d *decoder) flag(key string) bool {
	v, ok := d.get(key)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		d.fail(key, "a boolean", v)
	}
	return b
}

// share accepts a boolean or one of the sharing mode names.
func (d *decoder) share(key string) grid.Share {
	v, ok := d.get(key)
	if !ok {
		return grid.ShareOff
	}
	switch s := v.(type) {
	case bool:
		if s {
			return grid.ShareOn
		}
		return grid.ShareOff
	case string:
		share, err := grid.ParseShare(s)
		if err != nil {
			d.err = err
		}
		return share
	}
	d.fail(key, "a boolean or one of rows, columns, all", v)
	return grid.ShareOff
}
