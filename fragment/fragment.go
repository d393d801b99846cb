// Package fragment holds LiveView rendered fragments: the JSON trees a
// server sends to describe markup as static parts interleaved with
// dynamic values.
//
// A fragment object lists its statics under "s" and its dynamics under
// the keys "0", "1", ... so that statics[0] + dyn[0] + statics[1] + ...
// is the rendered markup. A dynamic is a string, a number, or a nested
// fragment. A fragment with a "d" key is a comprehension: each row of "d"
// is a list of dynamics rendered against the same statics. Statics given
// as a number refer to the shared templates under the root "p" key.
//
// Later diffs are merged into the held fragment as JSON merge patches, so
// a diff only carries the keys that changed.
package fragment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/tidwall/gjson"
)

var ErrFragment = errors.New("fragment error")

type Fragment struct {
	raw []byte
}

// New validates data as a rendered fragment object.
func New(data []byte) (*Fragment, error) {
	if err := checkObject(data); err != nil {
		return nil, err
	}
	return &Fragment{raw: append([]byte(nil), data...)}, nil
}

func checkObject(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: invalid JSON", ErrFragment)
	}
	if !gjson.ParseBytes(data).IsObject() {
		return fmt.Errorf("%w: expected a JSON object", ErrFragment)
	}
	return nil
}

// Merge applies diff to f. On error f is unchanged.
func (f *Fragment) Merge(diff []byte) error {
	if err := checkObject(diff); err != nil {
		return err
	}
	merged, err := jsonpatch.MergePatch(f.raw, diff)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFragment, err)
	}
	f.raw = merged
	return nil
}

func (f *Fragment) Clone() *Fragment {
	return &Fragment{raw: append([]byte(nil), f.raw...)}
}

func (f *Fragment) Bytes() []byte {
	return f.raw
}

// Render returns the markup described by f.
func (f *Fragment) Render() (string, error) {
	root := gjson.ParseBytes(f.raw)
	r := &renderer{templates: root.Get("p")}
	if err := r.render(root, "$"); err != nil {
		return "", err
	}
	return r.sb.String(), nil
}

type renderer struct {
	sb        strings.Builder
	templates gjson.Result
}

func (r *renderer) render(v gjson.Result, path string) error {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.String:
		r.sb.WriteString(v.Str)
		return nil
	case gjson.Number:
		r.sb.WriteString(v.Raw)
		return nil
	case gjson.JSON:
		if v.IsObject() {
			return r.object(v, path)
		}
	}
	return fmt.Errorf("%w: unexpected %s at %s", ErrFragment, v.Type, path)
}

func (r *renderer) object(v gjson.Result, path string) error {
	statics, err := r.statics(v, path)
	if err != nil {
		return err
	}
	if d := v.Get("d"); d.Exists() {
		if !d.IsArray() {
			return fmt.Errorf("%w: comprehension at %s is not an array", ErrFragment, path)
		}
		for i, row := range d.Array() {
			dyns := row.Array()
			rowPath := path + ".d." + strconv.Itoa(i)
			if err := r.interleave(statics, func(j int) gjson.Result {
				if j < len(dyns) {
					return dyns[j]
				}
				return gjson.Result{}
			}, rowPath); err != nil {
				return err
			}
		}
		return nil
	}
	return r.interleave(statics, func(j int) gjson.Result {
		return v.Get(strconv.Itoa(j))
	}, path)
}

func (r *renderer) interleave(statics []string, dyn func(int) gjson.Result, path string) error {
	for i, s := range statics {
		r.sb.WriteString(s)
		if i == len(statics)-1 {
			break
		}
		if err := r.render(dyn(i), path+"."+strconv.Itoa(i)); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) statics(v gjson.Result, path string) ([]string, error) {
	s := v.Get("s")
	if s.Type == gjson.Number {
		s = r.templates.Get(s.Raw)
	}
	if !s.IsArray() {
		return nil, fmt.Errorf("%w: missing statics at %s", ErrFragment, path)
	}
	arr := s.Array()
	res := make([]string, len(arr))
	for i := range arr {
		res[i] = arr[i].String()
	}
	return res, nil
}
