package tag

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/vango-dev/markup/internal/errors"
)

// wireNames maps property names to the attribute key they are stored under.
var (
	wireMu    sync.RWMutex
	wireNames = map[string]string{
		"forID":         "for",
		"httpEquiv":     "http-equiv",
		"acceptCharset": "accept-charset",
		"className":     "class",
	}
)

// RegisterWireName stores property prop under the attribute key wire.
func RegisterWireName(prop, wire string) {
	wireMu.Lock()
	wireNames[prop] = wire
	wireMu.Unlock()
}

// WireName returns the attribute key used for prop. Properties without a
// registered remapping use their own name.
func WireName(prop string) string {
	wireMu.RLock()
	defer wireMu.RUnlock()
	if w, ok := wireNames[prop]; ok {
		return w
	}
	return prop
}

// Prop reads property prop as T. Supported types are string, bool and int:
// a bool is true when the stored value equals the attribute key, an int
// parses the stored value and is 0 when it is empty or not a number.
// Any other T panics with an E001 error naming the property.
func Prop[T any](a *Attrs, prop string) T {
	key := WireName(prop)
	v := a.Get(key)
	var out T
	switch p := any(&out).(type) {
	case *string:
		*p = v
	case *bool:
		*p = v == key
	case *int:
		if v != "" {
			*p, _ = strconv.Atoi(v)
		}
	default:
		panic(errors.New("E001").WithDetailf("property %q of type %T", prop, out))
	}
	return out
}

// SetProp writes property prop. A bool true stores the attribute key as its
// own value and false removes the attribute; strings are stored as is and
// any other value is stored in its fmt representation.
func SetProp[T any](a *Attrs, prop string, value T) {
	key := WireName(prop)
	switch v := any(value).(type) {
	case string:
		a.Set(key, v)
	case bool:
		if v {
			a.Set(key, key)
		} else {
			a.Remove(key)
		}
	case int:
		a.Set(key, strconv.Itoa(v))
	default:
		a.Set(key, fmt.Sprint(v))
	}
}

// String returns the string property prop.
func (a *Attrs) String(prop string) string { return Prop[string](a, prop) }

// SetString sets the string property prop.
func (a *Attrs) SetString(prop, value string) { SetProp(a, prop, value) }

// Bool returns the flag property prop.
func (a *Attrs) Bool(prop string) bool { return Prop[bool](a, prop) }

// SetBool sets or clears the flag property prop.
func (a *Attrs) SetBool(prop string, value bool) { SetProp(a, prop, value) }

// Int returns the integer property prop.
func (a *Attrs) Int(prop string) int { return Prop[int](a, prop) }

// SetInt sets the integer property prop.
func (a *Attrs) SetInt(prop string, value int) { SetProp(a, prop, value) }
